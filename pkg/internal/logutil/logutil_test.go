/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	level   string
	message string
}

func (l *recordingLogger) record(level, msg string, args ...interface{}) {
	l.level = level
	l.message = fmt.Sprintf(msg, args...)
}

func (l *recordingLogger) Panicf(msg string, args ...interface{}) { l.record("panic", msg, args...) }
func (l *recordingLogger) Fatalf(msg string, args ...interface{}) { l.record("fatal", msg, args...) }
func (l *recordingLogger) Errorf(msg string, args ...interface{}) { l.record("error", msg, args...) }
func (l *recordingLogger) Warnf(msg string, args ...interface{}) { l.record("warn", msg, args...) }
func (l *recordingLogger) Infof(msg string, args ...interface{}) { l.record("info", msg, args...) }
func (l *recordingLogger) Debugf(msg string, args ...interface{}) { l.record("debug", msg, args...) }

func TestLogError(t *testing.T) {
	logger := &recordingLogger{}

	LogError(logger, "presentation", "canonicalize", "load context failed")

	require.Equal(t, "error", logger.level)
	require.Equal(t, "command=[presentation] action=[canonicalize] errMsg=[load context failed]", logger.message)
}

func TestLogDebug(t *testing.T) {
	logger := &recordingLogger{}

	LogDebug(logger, "presentation", "query", "success",
		CreateKeyValueString("path", "$.type"), CreateKeyValueString("matches", "2"))

	require.Equal(t, "debug", logger.level)
	require.Equal(t, "command=[presentation] action=[query] path=[$.type] matches=[2] msg=[success]", logger.message)
}

func TestLogInfo(t *testing.T) {
	logger := &recordingLogger{}

	t.Run("format verbs in the message are kept", func(t *testing.T) {
		LogInfo(logger, "presentation", "validate", "unexpected %s")

		require.Equal(t, "info", logger.level)
		require.Equal(t, "command=[presentation] action=[validate] msg=[unexpected %s]", logger.message)
	})
}

func TestCreateKeyValueString(t *testing.T) {
	require.Equal(t, "digest=[abc]", CreateKeyValueString("digest", "abc"))
	require.Equal(t, "digest=[]", CreateKeyValueString("digest", ""))
}
