// Package logrus adapts a logrus.Entry to the lenientjson Logger contract.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/lenientjson"
)

var _ lenientjson.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f lenientjson.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f lenientjson.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l Logger) Warn(msg string, f lenientjson.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l Logger) Error(msg string, f lenientjson.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
