/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cmdutil binds controller operations to the route or command name they are served under.
package cmdutil

import (
	"net/http"

	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/command"
)

// HTTPHandler binds a REST operation to its path and HTTP method.
type HTTPHandler struct {
	path   string
	method string
	handle http.HandlerFunc
}

// NewHTTPHandler binds handle to path and method.
func NewHTTPHandler(path, method string, handle http.HandlerFunc) *HTTPHandler {
	return &HTTPHandler{path: path, method: method, handle: handle}
}

// Path is the route the handler is registered under.
func (h *HTTPHandler) Path() string {
	return h.path
}

// Method is the HTTP method the route accepts.
func (h *HTTPHandler) Method() string {
	return h.method
}

// Handle returns the bound handler func.
func (h *HTTPHandler) Handle() http.HandlerFunc {
	return h.handle
}

// CommandHandler binds a command to its command and method names.
type CommandHandler struct {
	name   string
	method string
	handle command.Exec
}

// NewCommandHandler binds exec to the command name and method.
func NewCommandHandler(name, method string, exec command.Exec) *CommandHandler {
	return &CommandHandler{name: name, method: method, handle: exec}
}

// Name is the command group, e.g. "presentation".
func (c *CommandHandler) Name() string {
	return c.name
}

// Method is the operation within the command group.
func (c *CommandHandler) Method() string {
	return c.method
}

// Handle returns the bound command func.
func (c *CommandHandler) Handle() command.Exec {
	return c.handle
}
