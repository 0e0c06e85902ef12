package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset(rows int) Dataset {
	data := Dataset{Headers: []string{"User ID", "Name"}}
	for i := 0; i < rows; i++ {
		data.Rows = append(data.Rows, map[string]string{"User ID": fmt.Sprint(i + 1), "Name": "Dosen, Satu"})
	}
	return data
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset(1))
	require.NoError(t, err)

	text := strings.TrimPrefix(string(out), "\ufeff")
	assert.Equal(t, "User ID,Name\n1,\"Dosen, Satu\"\n", text)
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRenderMultiPage(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(80), "Teacher Performance Summary", "5 Mar 2024 pukul 14.07")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "", "")
	assert.Error(t, err)
}
