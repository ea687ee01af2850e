package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRecords_CachedWinsExceptRefreshedFields(t *testing.T) {
	cached := ChainRecord{
		"a":   1,
		"b":   2,
		"rpc": []string{"old"},
	}
	fetched := ChainRecord{
		"a":         9,
		"rpc":       []string{"new"},
		"faucets":   []string{"f"},
		"explorers": []string{"e"},
		"infoURL":   "u",
	}

	merged := MergeRecords(fetched, cached)

	assert.Equal(t, ChainRecord{
		"a":         1,
		"b":         2,
		"rpc":       []string{"new"},
		"faucets":   []string{"f"},
		"explorers": []string{"e"},
		"infoURL":   "u",
	}, merged)
}

func TestMergeRecords_RefreshedFieldAbsentFromFetch(t *testing.T) {
	cached := ChainRecord{"faucets": []string{"stale"}, "note": "keep"}
	fetched := ChainRecord{"rpc": []string{"new"}}

	merged := MergeRecords(fetched, cached)

	assert.Equal(t, []string{"new"}, merged["rpc"])
	assert.Equal(t, "keep", merged["note"])
	assert.NotContains(t, merged, "faucets")
}

func TestChainRecord_ChainIDCoercion(t *testing.T) {
	record := ChainRecord{"chainId": json.Number("137")}
	assert.Equal(t, "137", record.ChainID())

	record.SetChainID(record.ChainID())
	assert.Equal(t, "137", record["chainId"])

	record = ChainRecord{"chainId": "10"}
	assert.Equal(t, "10", record.ChainID())

	record = ChainRecord{}
	assert.Equal(t, "", record.ChainID())
}

func TestChainRecord_RPCToleratesGenericDecoding(t *testing.T) {
	record := ChainRecord{"rpc": []any{"https://a", "https://b", 42}}
	assert.Equal(t, []string{"https://a", "https://b"}, record.RPC())

	record.SetRPC([]string{"https://c"})
	assert.Equal(t, []string{"https://c"}, record.RPC())

	assert.Nil(t, ChainRecord{}.RPC())
}

func TestChainRecord_Icon(t *testing.T) {
	// Upstream string form is not a resolved descriptor.
	record := ChainRecord{"icon": "ethereum"}
	assert.Equal(t, "ethereum", record.IconName())
	_, ok := record.Icon()
	assert.False(t, ok)

	record.SetIcon(IconDescriptor{URL: "https://icons/eth.svg", Format: "svg"})
	icon, ok := record.Icon()
	require.True(t, ok)
	assert.Equal(t, IconDescriptor{URL: "https://icons/eth.svg", Format: "svg"}, icon)
	assert.Equal(t, "", record.IconName())

	// The shape produced by loading the cache file.
	loaded := ChainRecord{"icon": map[string]any{"url": "https://icons/eth.svg", "format": "svg"}}
	icon, ok = loaded.Icon()
	require.True(t, ok)
	assert.Equal(t, "https://icons/eth.svg", icon.URL)
	assert.Equal(t, "svg", icon.Format)
}

func TestContractEntry_Mainnet(t *testing.T) {
	assert.True(t, ContractEntry{"mainnet": "true"}.Mainnet())
	assert.True(t, ContractEntry{"mainnet": "TRUE"}.Mainnet())
	assert.True(t, ContractEntry{"mainnet": true}.Mainnet())
	assert.False(t, ContractEntry{"mainnet": "false"}.Mainnet())
	assert.False(t, ContractEntry{"mainnet": "yes"}.Mainnet())
	assert.False(t, ContractEntry{}.Mainnet())
	assert.False(t, ContractEntry(nil).Mainnet())
}

func TestContractRegistry_PreservesDocumentOrder(t *testing.T) {
	doc := []byte(`{
		"137": {"mainnet": "true"},
		"5":   {"mainnet": "false"},
		"1":   {"mainnet": "true"}
	}`)

	var registry ContractRegistry
	require.NoError(t, json.Unmarshal(doc, &registry))

	assert.Equal(t, []string{"137", "5", "1"}, registry.ChainIDs())
	assert.Equal(t, 3, registry.Len())

	entry, ok := registry.Entry("5")
	require.True(t, ok)
	assert.False(t, entry.Mainnet())

	_, ok = registry.Entry("999")
	assert.False(t, ok)
}

func TestContractRegistry_RejectsNonObjectDocument(t *testing.T) {
	var registry ContractRegistry
	assert.Error(t, json.Unmarshal([]byte(`["1","2"]`), &registry))
	assert.Error(t, json.Unmarshal([]byte(`{"1": {`), &registry))
}
