package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	chunks := NewTextChunker().ChunkText("A short profile.", 1000, 200)

	require.Len(t, chunks, 1)
	assert.Equal(t, "A short profile.", chunks[0])
}

func TestChunkText_SplitsAtParagraphs(t *testing.T) {
	para := strings.Repeat("word ", 100) // ~500 chars
	text := strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para)

	chunks := NewTextChunker().ChunkText(text, 600, 0)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 600)
	}
}

func TestChunkText_OverlapCarriesContext(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("alpha ", 90))
	text := para + "\n\n" + strings.TrimSpace(strings.Repeat("beta ", 90))

	chunks := NewTextChunker().ChunkText(text, 500, 100)

	require.Greater(t, len(chunks), 1)
	tail := chunks[0][len(chunks[0])-50:]
	assert.Contains(t, chunks[1], tail)
}

func TestChunkText_OversizedParagraphSplitsOnSentences(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("This sentence pads out one very long paragraph for the splitter. ")
	}

	chunks := NewTextChunker().ChunkText(sb.String(), 300, 50)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 300+50)
	}
}

func TestChunkText_EmptyInput(t *testing.T) {
	assert.Empty(t, NewTextChunker().ChunkText("", 1000, 200))
	assert.Empty(t, NewTextChunker().ChunkText("\n\n\n\n", 1000, 200))
}

func TestChunkText_DefaultsOnBadParameters(t *testing.T) {
	chunks := NewTextChunker().ChunkText("some text", 0, -5)
	require.Len(t, chunks, 1)
	assert.Equal(t, "some text", chunks[0])
}
