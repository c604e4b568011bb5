package tasks

// Status is the job state reported by the remote service. Only the two
// terminal codes carry meaning; every other value means "not finished yet".
type Status int

const (
	StatusFailed    Status = -1
	StatusSucceeded Status = 10
)

func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Params are the processing parameters forwarded to the remote annotator.
type Params struct {
	Module       string
	Resolution   int
	ThresholdA   float64
	ThresholdB   float64
	TargetWidth  int
	TargetHeight int
	PixelPerfect bool
	ResizeMode   string
}

type Job struct {
	ID        string   `json:"task_id"`
	Status    Status   `json:"status"`
	HigImages []string `json:"hig_images"`
	Images    []string `json:"images"`
}

// ResultURLs returns the high quality images when present, the standard ones otherwise.
func (j Job) ResultURLs() []string {
	if len(j.HigImages) > 0 {
		return j.HigImages
	}

	return j.Images
}

// ResultURL returns the first result URL or an empty string.
func (j Job) ResultURL() string {
	urls := j.ResultURLs()
	if len(urls) == 0 {
		return ""
	}

	return urls[0]
}
