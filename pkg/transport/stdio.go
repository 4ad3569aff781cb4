package transport

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/protocol"
)

// StdioTransport implements communication over standard input/output
type StdioTransport struct {
	reader *bufio.Reader
	writer *bufio.Writer
}

// NewStdioTransport creates a new transport that uses stdin/stdout
func NewStdioTransport() *StdioTransport {
	return &StdioTransport{
		reader: bufio.NewReader(os.Stdin),
		writer: bufio.NewWriter(os.Stdout),
	}
}

// ReadRequest reads a single JSON-RPC request object from stdin.
// Requests are not newline delimited so we track brace depth,
// ignoring braces that appear inside string literals.
func (t *StdioTransport) ReadRequest() (*protocol.JsonRpcRequest, error) {
	logger.Debug("Waiting for request on stdin...")

	var requestData []byte
	var depth int
	var inString bool
	var escapeNext bool

	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				logger.Info("Received EOF on stdin, client disconnected")
				return nil, err
			}
			logger.Error("Error reading from stdin:", err)
			return nil, err
		}

		requestData = append(requestData, b)

		if !escapeNext && b == '"' {
			inString = !inString
		}

		if inString && b == '\\' {
			escapeNext = !escapeNext
		} else {
			escapeNext = false
		}

		if !inString {
			if b == '{' {
				depth++
			} else if b == '}' {
				depth--
				// Closed the outermost brace, the object is complete
				if depth == 0 {
					break
				}
			}
		}
	}

	requestStr := strings.TrimSpace(string(requestData))
	logger.Debug("Received raw request:", requestStr)

	request, err := protocol.ParseJsonRpcRequest([]byte(requestStr))
	if err != nil {
		logger.Error("Failed to parse JSON-RPC request:", err)
		return nil, err
	}

	return request, nil
}

// WriteResponse writes a JSON-RPC response to stdout
func (t *StdioTransport) WriteResponse(response *protocol.JsonRpcResponse) error {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		logger.Error("Failed to marshal response:", err)
		return err
	}

	responseBytes = append(responseBytes, '\n')

	logger.Debug("Sending response:", string(responseBytes))

	if _, err := t.writer.Write(responseBytes); err != nil {
		logger.Error("Failed to write response:", err)
		return err
	}

	if err := t.writer.Flush(); err != nil {
		logger.Error("Failed to flush response:", err)
		return err
	}

	return nil
}
