package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// IconDescriptor identifies a displayable icon for a chain.
type IconDescriptor struct {
	URL    string `json:"url"`
	Format string `json:"format"`
}

// ChainRecord is the enriched metadata for a single chain, kept as an open
// mapping so that keys unknown to this program survive a merge with a
// previously cached record.
type ChainRecord map[string]any

// ChainDetailsCache maps chain id (string form) to its enriched record.
// This is the structure persisted between runs.
type ChainDetailsCache map[string]ChainRecord

// refreshedKeys are always taken from the freshly fetched record on a
// confirmed overwrite; every other key keeps its cached value.
var refreshedKeys = []string{"rpc", "faucets", "explorers", "infoURL"}

func (r ChainRecord) stringField(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// ChainID returns the chain identifier in string form, regardless of whether
// the underlying JSON carried it as a number or a string.
func (r ChainRecord) ChainID() string { return r.stringField("chainId") }

// SetChainID stores the chain identifier in its canonical string form.
func (r ChainRecord) SetChainID(id string) { r["chainId"] = id }

func (r ChainRecord) Name() string      { return r.stringField("name") }
func (r ChainRecord) ShortName() string { return r.stringField("shortName") }
func (r ChainRecord) ChainTag() string  { return r.stringField("chain") }

// IconName returns the icon identifier when the record still carries the
// upstream string form (before an IconDescriptor has been attached).
func (r ChainRecord) IconName() string {
	if s, ok := r["icon"].(string); ok {
		return s
	}
	return ""
}

// Icon returns the resolved icon descriptor, if one has been attached. It
// handles both the in-memory IconDescriptor and the generic mapping produced
// by loading the cache file.
func (r ChainRecord) Icon() (IconDescriptor, bool) {
	switch v := r["icon"].(type) {
	case IconDescriptor:
		return v, true
	case map[string]any:
		d := IconDescriptor{}
		if u, ok := v["url"].(string); ok {
			d.URL = u
		}
		if f, ok := v["format"].(string); ok {
			d.Format = f
		}
		if d.URL == "" {
			return IconDescriptor{}, false
		}
		return d, true
	default:
		return IconDescriptor{}, false
	}
}

// SetIcon attaches a resolved icon descriptor to the record.
func (r ChainRecord) SetIcon(icon IconDescriptor) { r["icon"] = icon }

// SetMainnet stores the mainnet flag taken from the contract registry.
func (r ChainRecord) SetMainnet(mainnet bool) { r["mainnet"] = mainnet }

// RPC returns the record's RPC endpoint list, tolerating the []any form
// produced by generic JSON decoding.
func (r ChainRecord) RPC() []string {
	switch v := r["rpc"].(type) {
	case []string:
		return v
	case []any:
		urls := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				urls = append(urls, s)
			}
		}
		return urls
	default:
		return nil
	}
}

// SetRPC replaces the record's RPC endpoint list.
func (r ChainRecord) SetRPC(urls []string) { r["rpc"] = urls }

// MergeRecords combines a freshly fetched record with its cached predecessor.
// Cached values win for every overlapping key except rpc, faucets, explorers
// and infoURL, which always reflect the fresh fetch.
func MergeRecords(fetched, cached ChainRecord) ChainRecord {
	merged := make(ChainRecord, len(fetched)+len(cached))
	for k, v := range fetched {
		merged[k] = v
	}
	for k, v := range cached {
		merged[k] = v
	}
	for _, k := range refreshedKeys {
		if v, ok := fetched[k]; ok {
			merged[k] = v
		} else {
			delete(merged, k)
		}
	}
	return merged
}

// ContractEntry is a single registry record. Like ChainRecord it stays an
// open mapping; only the mainnet flag is interpreted here.
type ContractEntry map[string]any

// Mainnet reports whether the entry is flagged as a mainnet deployment. The
// registry encodes the flag as the strings "true"/"false"; plain booleans are
// accepted too, anything else counts as false.
func (e ContractEntry) Mainnet() bool {
	switch v := e["mainnet"].(type) {
	case string:
		return strings.EqualFold(v, "true")
	case bool:
		return v
	default:
		return false
	}
}

// ContractRegistry is the authoritative list of chain ids to process. It
// preserves the document order of the source JSON object so chains are
// handled in registry order, the way the upstream file is organized.
type ContractRegistry struct {
	order   []string
	entries map[string]ContractEntry
}

// UnmarshalJSON decodes the registry object while recording key order.
func (r *ContractRegistry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read registry document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("registry document is not a JSON object")
	}

	r.order = nil
	r.entries = make(map[string]ContractEntry)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read registry key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected registry key token %v", keyTok)
		}

		var entry ContractEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("failed to decode registry entry %q: %w", key, err)
		}

		if _, seen := r.entries[key]; !seen {
			r.order = append(r.order, key)
		}
		r.entries[key] = entry
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read registry document end: %w", err)
	}
	return nil
}

// ChainIDs returns the chain ids in registry document order.
func (r *ContractRegistry) ChainIDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Entry returns the registry record for a chain id.
func (r *ContractRegistry) Entry(chainID string) (ContractEntry, bool) {
	entry, ok := r.entries[chainID]
	return entry, ok
}

// Len returns the number of distinct chain ids in the registry.
func (r *ContractRegistry) Len() int { return len(r.order) }
