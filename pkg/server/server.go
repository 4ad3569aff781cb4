package server

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/protocol"
	"github.com/will8807/ggg-luck/pkg/tools"
	"github.com/will8807/ggg-luck/pkg/transport"
)

// Server represents an MCP server exposing the luck analysis tools
type Server struct {
	transport transport.Transport
	handlers  map[string]HandlerFunc
	tools     []protocol.Tool
}

// HandlerFunc is a function that handles an MCP request
type HandlerFunc func(params interface{}) (interface{}, error)

// Singleton instance
var (
	instance *Server
	once     sync.Once
	mu       sync.Mutex
)

// GetInstance returns the singleton instance of the Server
func GetInstance() *Server {
	if instance == nil {
		instance = InitInstance(transport.NewStdioTransport())
	}
	return instance
}

// InitInstance initializes the singleton instance of the Server with the specified transport
func InitInstance(t transport.Transport) *Server {
	once.Do(func() {
		instance = &Server{
			transport: t,
			handlers:  make(map[string]HandlerFunc),
			tools:     []protocol.Tool{},
		}
		instance.RegisterDefaultTools()
	})
	return instance
}

// RegisterTool registers a tool with the server
func (s *Server) RegisterTool(tool protocol.Tool, handler HandlerFunc) {
	mu.Lock()
	defer mu.Unlock()

	s.tools = append(s.tools, tool)
	s.handlers[tool.Name] = handler
	logger.Info("Registered tool:", tool.Name)
}

// GetTools returns the list of registered tools
func (s *Server) GetTools() []protocol.Tool {
	mu.Lock()
	defer mu.Unlock()
	return s.tools
}

// RegisterDefaultTools registers all the default tools with the server
func (s *Server) RegisterDefaultTools() {
	logger.Info("Registering default tools...")

	s.RegisterTool(tools.LuckAnalysisTool(), tools.HandleLuckAnalysisTool)
	s.RegisterTool(tools.TeamTrendsTool(), tools.HandleTeamTrendsTool)
	s.RegisterTool(tools.WeeklyBreakdownTool(), tools.HandleWeeklyBreakdownTool)
	s.RegisterTool(tools.LuckReportTool(), tools.HandleLuckReportTool)
	s.RegisterTool(tools.ListTeamsTool(), tools.HandleListTeamsTool)
	s.RegisterTool(tools.LeaguePageTool(), tools.HandleLeaguePageTool)

	// Register built-in handlers
	s.handlers[string(protocol.MethodInitialize)] = s.handleInitialize
	s.handlers[string(protocol.MethodInitialized)] = s.handleInitialized
	s.handlers[string(protocol.MethodToolsList)] = s.handleToolsList
	s.handlers[string(protocol.MethodToolsCall)] = s.handleToolsCall
}

// Start starts the server and begins processing requests
func (s *Server) Start() error {
	logger.Info("Starting MCP server")

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.ProcessRequests()
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info("Received signal:", sig)
		return nil
	}
}

// ProcessRequests continuously processes incoming requests
func (s *Server) ProcessRequests() error {
	for {
		req, err := s.transport.ReadRequest()
		if err != nil {
			return err
		}

		// A nil response means no response is required (notifications)
		resp := s.handleRequest(req)
		if resp == nil {
			continue
		}

		if err := s.transport.WriteResponse(resp); err != nil {
			return err
		}
	}
}

// handleRequest processes a request and returns a response
func (s *Server) handleRequest(req *protocol.JsonRpcRequest) *protocol.JsonRpcResponse {
	logger.Info(">> ", req.Method)

	// Handle notifications (no response required)
	if strings.HasPrefix(req.Method, "notifications/") {
		logger.Debug("Received notification:", req.Method)
		return nil
	}

	resp := &protocol.JsonRpcResponse{
		JsonRPC: protocol.JsonRpcVersion,
		ID:      req.ID,
	}

	handler := s.handlers[req.Method]
	if handler == nil {
		resp.Error = &protocol.JsonRpcError{
			Code:    protocol.ErrMethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", req.Method),
		}
		return resp
	}

	result, err := handler(req.Params)

	if err == nil && result == nil {
		return nil
	}

	if err != nil {
		resp.Error = &protocol.JsonRpcError{
			Code:    protocol.ErrToolExecutionFailed,
			Message: err.Error(),
		}
		return resp
	}

	resultBytes, err := json.Marshal(result)
	if err != nil {
		resp.Error = &protocol.JsonRpcError{
			Code:    protocol.ErrInternal,
			Message: "Failed to marshal result: " + err.Error(),
		}
		return resp
	}
	resp.Result = resultBytes

	return resp
}

// handleToolsList handles the tools/list method
func (s *Server) handleToolsList(params interface{}) (interface{}, error) {
	logger.Info("Handling tools/list request")

	toolsResponse := struct {
		Tools []protocol.Tool `json:"tools"`
	}{
		Tools: s.tools,
	}

	return toolsResponse, nil
}

// handleInitialize handles the initialize method
func (s *Server) handleInitialize(params interface{}) (interface{}, error) {
	logger.Info("Handling initialize request with", len(s.tools), "tools registered")

	// Echo the client's protocol version where given
	requestedProtocolVersion := "2024-11-05"

	var paramsMap map[string]interface{}
	if params != nil {
		if jsonBytes, ok := params.(json.RawMessage); ok {
			json.Unmarshal(jsonBytes, &paramsMap)
		} else if directMap, ok := params.(map[string]interface{}); ok {
			paramsMap = directMap
		}

		if version, exists := paramsMap["protocolVersion"].(string); exists {
			requestedProtocolVersion = version
		}
	}

	capabilities := map[string]any{}
	if len(s.tools) > 0 {
		capabilities["tools"] = map[string]any{
			"listChanged": true,
		}
	}

	initializeResponse := struct {
		ProtocolVersion string         `json:"protocolVersion"`
		Capabilities    map[string]any `json:"capabilities"`
		ServerInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
	}{
		ProtocolVersion: requestedProtocolVersion,
		Capabilities:    capabilities,
	}
	initializeResponse.ServerInfo.Name = "ggg-luck"
	initializeResponse.ServerInfo.Version = "1.0.0"

	return initializeResponse, nil
}

// handleInitialized handles the initialized notification
// 'initialized' does not require a response
func (s *Server) handleInitialized(params interface{}) (interface{}, error) {
	logger.Debug("Handling initialized notification")
	return nil, nil
}

func (s *Server) handleToolsCall(params any) (any, error) {
	logger.Info("Handling tools/call request")

	type ToolCallParams struct {
		Arguments map[string]any `json:"arguments"`
		Name      string         `json:"name"`
	}

	var toolCallParams ToolCallParams

	paramsBytes, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal params: %v", err)
	}

	if err := json.Unmarshal(paramsBytes, &toolCallParams); err != nil {
		return nil, fmt.Errorf("invalid tools/call parameters: %v", err)
	}

	logger.Info("Tool call requested for:", toolCallParams.Name)

	handler := s.handlers[toolCallParams.Name]
	if handler == nil {
		return nil, fmt.Errorf("tool not found: %s", toolCallParams.Name)
	}

	result, err := handler(toolCallParams.Arguments)
	if err != nil {
		return nil, fmt.Errorf("tool execution failed: %v", err)
	}

	return result, nil
}
