package idgen

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique booking reference strings.
type Generator interface {
	Reference() string
}

// SnowflakeGenerator implements Generator using Twitter Snowflake IDs
// rendered in base36, which keeps references short enough to read back
// over the phone.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator initializes a new reference generator.
// nodeID must be unique per server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{node: node}, nil
}

// Reference returns a new unique uppercase base36 reference.
func (g *SnowflakeGenerator) Reference() string {
	return strings.ToUpper(g.node.Generate().Base36())
}
