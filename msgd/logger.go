package msgd

import (
	"github.com/Mingdi-Luo/EE533-Lab1/internal/lg"
)

type Logger lg.Logger

const (
	LOG_DEBUG = lg.DEBUG
	LOG_INFO  = lg.INFO
	LOG_WARN  = lg.WARN
	LOG_ERROR = lg.ERROR
	LOG_FATAL = lg.FATAL
)

func (m *MSGD) logf(level lg.LogLevel, f string, args ...interface{}) {
	lg.Logf(m.opts.Logger, m.opts.LogLevel, level, f, args...)
}
