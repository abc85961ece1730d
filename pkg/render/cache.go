package render

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type programKey struct {
	vertex   string
	fragment string
}

// ProgramCache builds and reuses linked vertex+fragment programs keyed by
// their sources, so repeated requests for the same effect share one GL
// program. Evicted programs are released.
type ProgramCache struct {
	cache *lru.Cache[programKey, *ShaderProgram]
}

// NewProgramCache creates a cache holding up to size linked programs.
func NewProgramCache(size int) *ProgramCache {
	cache, _ := lru.NewWithEvict(size, releaseProgramOnEviction)
	return &ProgramCache{cache: cache}
}

// Get returns the linked program for the source pair, compiling and linking
// it on the first request. The returned program stays owned by the cache.
func (c *ProgramCache) Get(vertexSource, fragmentSource string) (*ShaderProgram, error) {
	key := programKey{vertex: vertexSource, fragment: fragmentSource}
	if program, ok := c.cache.Get(key); ok {
		return program, nil
	}

	vertex, err := ShaderFromString(vertexSource, VertexStage)
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}
	defer vertex.Release()

	fragment, err := ShaderFromString(fragmentSource, FragmentStage)
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}
	defer fragment.Release()

	program := NewShaderProgram()
	program.AddShader(vertex)
	program.AddShader(fragment)
	if err := program.Link(); err != nil {
		program.Release()
		return nil, fmt.Errorf("build program: %w", err)
	}

	c.cache.Add(key, program)
	return program, nil
}

// Purge releases every cached program.
func (c *ProgramCache) Purge() {
	c.cache.Purge()
}

func releaseProgramOnEviction(_ programKey, program *ShaderProgram) {
	program.Release()
}
