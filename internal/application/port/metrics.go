package port

// Monitor pipeline stages reported to MonitorMetrics.ObserveFailure.
const (
	StageReadText  = "read_text"
	StageReadImage = "read_image"
	StageExtract   = "extract"
	StagePayload   = "payload"
	StageSave      = "save"
)

// MonitorMetrics receives counters from the clipboard capture pipeline.
type MonitorMetrics interface {
	ObserveCapture(kind string)
	ObserveDuplicate()
	ObserveFailure(stage string)
	ObservePoll()
}
