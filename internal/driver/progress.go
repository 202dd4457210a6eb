package driver

// Stage names one step of the pipeline Compile runs through, for a
// progress UI to label. Grounded on the teacher's
// internal/buildpipeline.Stage/Event/ProgressSink/ChannelSink, trimmed to
// the stages this pipeline actually has (no link/run stages, no
// per-file Status — a wasmc build is one entry file plus a handful of
// declaration files, not a project tree).
type Stage string

const (
	StageParse    Stage = "parse"
	StageScan     Stage = "scan"
	StageCompile  Stage = "compile"
	StageEncode   Stage = "encode"
	StageComplete Stage = "complete"
)

// Event reports that the pipeline has entered stage.
type Event struct {
	Stage Stage
	Err   error
}

// ProgressSink consumes progress events emitted by Compile.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel, the same shape the
// teacher's bubbletea progress model reads from.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, stage Stage, err error) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Stage: stage, Err: err})
}
