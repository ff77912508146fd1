package blockly

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InputBlock is a named input socket on a block. BlockID is empty when
// nothing is plugged into the socket.
type InputBlock struct {
	Name    string `yaml:"name" json:"name"`
	BlockID string `yaml:"block_id,omitempty" json:"blockId,omitempty"`
}

// BlockData is one node of the block program graph as exported by the editor.
type BlockData struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"blockName"`
	Type        string       `yaml:"type,omitempty" json:"type,omitempty"`
	InputBlocks []InputBlock `yaml:"inputs,omitempty" json:"inputBlocks,omitempty"`
}

func FindBlockByID(blocks []BlockData, id string) (BlockData, bool) {
	for _, b := range blocks {
		if b.ID == id {
			return b, true
		}
	}
	return BlockData{}, false
}

// FindBlockInput returns the block plugged into the input socket named
// inputName. A missing or unwired socket is reported as not found.
func FindBlockInput(blocks []BlockData, block BlockData, inputName string) (BlockData, bool) {
	for _, in := range block.InputBlocks {
		if in.Name != inputName {
			continue
		}
		if in.BlockID == "" {
			return BlockData{}, false
		}
		return FindBlockByID(blocks, in.BlockID)
	}
	return BlockData{}, false
}

type blockFile struct {
	Blocks []BlockData `yaml:"blocks"`
}

// LoadBlocks reads a YAML file holding a flat `blocks:` list.
func LoadBlocks(path string) ([]BlockData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f blockFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse blocks %s: %w", path, err)
	}
	return f.Blocks, nil
}
