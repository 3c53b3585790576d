package vm

import "github.com/sirupsen/logrus"

// TraceLogger is an opt-in hook invoked once per cycle, right after its
// snapshot is appended to the trace. It revives the earliest version of
// this machine's habit of printing every register snapshot as it runs,
// as a structured-log hook rather than an unconditional stdout write,
// so the Machine stays usable as a plain library when no logger is
// attached.
type TraceLogger interface {
	LogCycle(r Registers)
}

// LogrusTraceLogger logs each cycle's register snapshot as a single
// structured log entry at debug level.
type LogrusTraceLogger struct {
	Logger *logrus.Logger
}

// NewLogrusTraceLogger wraps logger (or logrus.StandardLogger() if nil)
// as a TraceLogger.
func NewLogrusTraceLogger(logger *logrus.Logger) *LogrusTraceLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusTraceLogger{Logger: logger}
}

func (l *LogrusTraceLogger) LogCycle(r Registers) {
	l.Logger.WithFields(logrus.Fields{
		"clk": r.Clk.String(),
		"ip":  r.Ip.String(),
		"ci":  r.Ci.String(),
		"ni":  r.Ni.String(),
		"mp":  r.Mp.String(),
		"mv":  r.Mv.String(),
		"mvi": r.Mvi.String(),
	}).Debug("cycle")
}
