/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logutil formats command log lines as key=[value] pairs, so a request can be followed
// through the logs by its command and action names.
package logutil

import (
	"fmt"
	"strings"

	"github.com/hyperledger/aries-framework-go/spi/log"
)

const (
	commandKey = "command"
	actionKey  = "action"
	errMsgKey  = "errMsg"
	msgKey     = "msg"
)

// LogError logs a failed command action. data holds extra key=[value] pairs, see CreateKeyValueString.
func LogError(logger log.Logger, command, action, errMsg string, data ...string) {
	logger.Errorf("%s", entry(command, action, errMsgKey, errMsg, data))
}

// LogDebug logs a command action at debug level.
func LogDebug(logger log.Logger, command, action, msg string, data ...string) {
	logger.Debugf("%s", entry(command, action, msgKey, msg, data))
}

// LogInfo logs a command action at info level. Rejected requests are logged here.
func LogInfo(logger log.Logger, command, action, msg string, data ...string) {
	logger.Infof("%s", entry(command, action, msgKey, msg, data))
}

// CreateKeyValueString formats a single key=[value] pair.
func CreateKeyValueString(key, val string) string {
	return fmt.Sprintf("%s=[%s]", key, val)
}

func entry(command, action, msgKey, msg string, data []string) string {
	fields := make([]string, 0, len(data)+3)
	fields = append(fields, CreateKeyValueString(commandKey, command), CreateKeyValueString(actionKey, action))
	fields = append(fields, data...)
	fields = append(fields, CreateKeyValueString(msgKey, msg))

	return strings.Join(fields, " ")
}
