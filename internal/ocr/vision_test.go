package ocr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewVisionRequest(t *testing.T) {
	t.Parallel()

	minHeight := float32(0.1)

	testcases := []struct {
		name     string
		revision Revision
		opts     Options
		expected visionRequest
	}{
		{
			name:     "defaults",
			revision: Revision1,
			opts:     Options{},
			expected: visionRequest{Revision: 1, RecognitionLevel: LevelAccurate},
		},
		{
			name:     "newest revision adds nothing beyond options",
			revision: Revision3,
			opts:     Options{Level: LevelFast},
			expected: visionRequest{Revision: 3, RecognitionLevel: LevelFast},
		},
		{
			name:     "unknown level falls back to accurate",
			revision: Revision2,
			opts:     Options{Level: Level(42)},
			expected: visionRequest{Revision: 2, RecognitionLevel: LevelAccurate},
		},
		{
			name:     "every option",
			revision: Revision3,
			opts: Options{
				Level:              LevelFast,
				LanguageCorrection: true,
				MinTextHeight:      &minHeight,
				CustomWords:        []string{"etcd", "Kubernetes"},
			},
			expected: visionRequest{
				Revision:               3,
				RecognitionLevel:       LevelFast,
				UsesLanguageCorrection: true,
				MinimumTextHeight:      &minHeight,
				CustomWords:            []string{"etcd", "Kubernetes"},
			},
		},
		{
			name:     "empty custom word list is not set",
			revision: Revision3,
			opts:     Options{CustomWords: []string{}},
			expected: visionRequest{Revision: 3, RecognitionLevel: LevelAccurate},
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := newVisionRequest(tc.revision, tc.opts)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
