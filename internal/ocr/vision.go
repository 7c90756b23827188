package ocr

// visionRequest lists the VNRecognizeTextRequest properties set for one
// recognition. Nothing else on the request is changed from its default.
type visionRequest struct {
	Revision               uint
	RecognitionLevel       Level
	UsesLanguageCorrection bool
	MinimumTextHeight      *float32
	CustomWords            []string
}

func newVisionRequest(revision Revision, opts Options) visionRequest {
	req := visionRequest{
		Revision:               uint(revision),
		RecognitionLevel:       opts.Level,
		UsesLanguageCorrection: opts.LanguageCorrection,
		MinimumTextHeight:      opts.MinTextHeight,
	}
	if req.RecognitionLevel != LevelFast {
		req.RecognitionLevel = LevelAccurate
	}
	if len(opts.CustomWords) > 0 {
		req.CustomWords = opts.CustomWords
	}
	return req
}
