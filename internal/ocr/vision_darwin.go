//go:build darwin

package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"unsafe"

	"github.com/Masterminds/semver/v3"
	"github.com/progrium/darwinkit/macos/foundation"
	"github.com/progrium/darwinkit/macos/vision"
	"github.com/progrium/darwinkit/objc"
	"golang.org/x/sys/unix"
)

type visionRecognizer struct {
	logger   *slog.Logger
	revision Revision
}

// New returns a Vision backed recognizer using the newest revision the host
// supports.
func New(logger *slog.Logger) (Recognizer, error) {
	v, err := hostVersion()
	if err != nil {
		logger.Warn("falling back to the first recognizer revision", "err", err)
	}

	revision := SelectRevision(v)
	logger.Debug("selected recognizer revision", "os", v, "revision", int(revision))

	return &visionRecognizer{
		logger:   logger,
		revision: revision,
	}, nil
}

func hostVersion() (*semver.Version, error) {
	s, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return nil, fmt.Errorf("sysctl kern.osproductversion: %w", err)
	}
	return ParseOSVersion(s)
}

func (r *visionRecognizer) Revision() string {
	return r.revision.String()
}

func (r *visionRecognizer) Recognize(
	ctx context.Context,
	img image.Image,
	opts Options,
) ([]Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := encodePNG(img)
	if err != nil {
		return nil, err
	}

	var (
		observations []Observation
		ocrErr       error
	)

	objc.WithAutoreleasePool(func() {
		settings := newVisionRequest(r.revision, opts)

		req := vision.NewRecognizeTextRequest().Init()
		req.SetRevision(settings.Revision)
		req.SetUsesLanguageCorrection(settings.UsesLanguageCorrection)

		switch settings.RecognitionLevel {
		case LevelFast:
			req.SetRecognitionLevel(vision.RequestTextRecognitionLevelFast)
		default:
			req.SetRecognitionLevel(vision.RequestTextRecognitionLevelAccurate)
		}

		if settings.MinimumTextHeight != nil {
			req.SetMinimumTextHeight(*settings.MinimumTextHeight)
		}

		if settings.CustomWords != nil {
			req.SetCustomWords(settings.CustomWords)
		}

		handler := vision.NewImageRequestHandler().InitWithDataOptions(data, nil)

		var errObj foundation.Error
		handler.PerformRequestsError([]vision.IRequest{req}, unsafe.Pointer(&errObj))
		if !errObj.IsNil() {
			ocrErr = errors.New(errObj.Description())
			return
		}

		results := req.Results()
		observations = make([]Observation, 0, len(results))
		for _, o := range results {
			observation := vision.RecognizedTextObservationFrom(o.Ptr())
			bbox := observation.BoundingBox()

			obs := Observation{
				BoundingBox: Rect{
					X:      bbox.Origin.X,
					Y:      bbox.Origin.Y,
					Width:  bbox.Size.Width,
					Height: bbox.Size.Height,
				},
			}
			for _, c := range observation.TopCandidates(1) {
				obs.Candidates = append(obs.Candidates, Candidate{
					Text:       c.String(),
					Confidence: float32(c.Confidence()),
				})
			}

			observations = append(observations, obs)
		}
	})

	if ocrErr != nil {
		return nil, fmt.Errorf("vision: %w", ocrErr)
	}

	r.logger.Debug("vision request completed", "observations", len(observations))
	return observations, nil
}
