package schema_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/schema"
)

func TestSchemaCommand(t *testing.T) {
	var out strings.Builder
	root := &cli.Command{
		Name:     "stylecfg",
		Writer:   &out,
		Commands: []*cli.Command{schema.New()},
	}
	require.NoError(t, root.Run(context.Background(), []string{"stylecfg", "schema"}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out.String()), &doc))
	assert.Equal(t, "Style configuration declaration", doc["title"])
	assert.Contains(t, doc, "properties")
}
