// Package contract renders the TestBlocks Solidity source used by retarget tests.
package contract

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"text/template"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
)

// The blank line after blockChainworks keeps its four-space indent.
const testBlocksSource = `// SPDX-License-Identifier: Unlicensed
pragma solidity ^0.8.0;

contract TestBlocks {
    bytes32[] public blockHashes;
    uint64[] public blockHeights;
    uint256[] public blockChainworks;
` + "    \n" + `
    bytes32 public retargetBlockHash;

    constructor() {
        retargetBlockHash = bytes32(0x{{.RetargetHash}});
        blockHashes = [
{{range $i, $r := .Records}}{{if $i}},
{{end}}            bytes32(0x{{$r.Hash}}){{end}}
        ];
        blockHeights = [
            {{range $i, $r := .Records}}{{if $i}}, {{end}}{{$r.Height}}{{end}}
        ];
        blockChainworks = [
            {{range $i, $r := .Records}}{{if $i}}, {{end}}{{$r.Chainwork}}{{end}}
        ];
    }
}
`

var testBlocksTemplate = template.Must(template.New("TestBlocks").Parse(testBlocksSource))

type recordView struct {
	Hash      string
	Height    uint64
	Chainwork string
}

type contractView struct {
	RetargetHash string
	Records      []recordView
}

// SortRecords returns a copy of records ordered by ascending height.
func SortRecords(records []model.BlockRecord) []model.BlockRecord {
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, func(a, b model.BlockRecord) int {
		return cmp.Compare(a.Height, b.Height)
	})
	return sorted
}

// Render writes the TestBlocks contract for retargetHash and records. Records are
// sorted by height first so the hash, height and chainwork arrays stay index aligned.
func Render(w io.Writer, retargetHash chainhash.Hash, records []model.BlockRecord) error {
	if len(records) == 0 {
		return errors.New("no block records to render")
	}

	sorted := SortRecords(records)
	view := contractView{
		RetargetHash: retargetHash.String(),
		Records:      make([]recordView, 0, len(sorted)),
	}
	for i, r := range sorted {
		if i > 0 && sorted[i-1].Height == r.Height {
			return fmt.Errorf("duplicate block record for height %d", r.Height)
		}
		if r.Chainwork == nil || r.Chainwork.Sign() < 0 {
			return fmt.Errorf("invalid chainwork for height %d", r.Height)
		}
		view.Records = append(view.Records, recordView{
			Hash:      r.Hash.String(),
			Height:    r.Height,
			Chainwork: r.Chainwork.String(),
		})
	}

	if err := testBlocksTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("render contract: %w", err)
	}
	return nil
}
