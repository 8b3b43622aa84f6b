// Package tools defines the registry of remote-callable tool
// endpoints. Each Tool carries its caller-facing metadata (name,
// description, JSON Schema for the arguments) together with the gin
// handler that executes it. The registry mounts the whole catalog on a
// router group: GET lists the metadata, POST /:name invokes one tool.
package tools

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StubMessage is the sentinel returned by endpoints that are declared
// but not implemented. It is a literal string, not a structured error.
const StubMessage = "Sorry !!! Function not implemented yet"

// Tool is one remote-callable operation.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema,omitempty"`
	Handler     gin.HandlerFunc `json:"-"`
}

// Registry holds the tool catalog in registration order.
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Tool)}
}

// Register adds a tool. Registering a duplicate name panics; the
// catalog is assembled once at startup.
func (r *Registry) Register(t Tool) {
	if _, ok := r.byName[t.Name]; ok {
		panic("tools: duplicate tool name " + t.Name)
	}
	r.tools = append(r.tools, t)
	r.byName[t.Name] = t
}

// Stub registers a named placeholder that answers with StubMessage.
func (r *Registry) Stub(name string) {
	r.Register(Tool{
		Name:        name,
		Description: "Not implemented yet",
		Handler: func(c *gin.Context) {
			c.JSON(http.StatusOK, StubMessage)
		},
	})
}

// Tools returns the catalog in registration order.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Mount attaches the registry to a router group.
func (r *Registry) Mount(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tools": r.tools})
	})
	g.POST("/:name", func(c *gin.Context) {
		t, ok := r.byName[c.Param("name")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown tool: " + c.Param("name")})
			return
		}
		t.Handler(c)
	})
}
