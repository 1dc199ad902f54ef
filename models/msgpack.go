package models

import (
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion guards against loading a snapshot written by an incompatible build
const snapshotVersion = 1

// catalogSnapshot is the msgpack envelope around CatalogData
type catalogSnapshot struct {
	Version int         `msgpack:"version"`
	Catalog CatalogData `msgpack:"catalog"`
}

// EncodeSnapshot serializes catalog data to msgpack bytes.
// Snapshots are the compact form used to ship a catalog between environments.
func EncodeSnapshot(data CatalogData) ([]byte, error) {
	b, err := msgpack.Marshal(catalogSnapshot{Version: snapshotVersion, Catalog: data})
	if err != nil {
		return nil, serr.Wrap(err, "failed to msgpack encode catalog")
	}
	return b, nil
}

// DecodeSnapshot parses msgpack bytes written by EncodeSnapshot
func DecodeSnapshot(b []byte) (CatalogData, error) {
	var snap catalogSnapshot
	if err := msgpack.Unmarshal(b, &snap); err != nil {
		return CatalogData{}, serr.Wrap(err, "failed to unmarshal catalog snapshot")
	}
	if snap.Version != snapshotVersion {
		return CatalogData{}, serr.New("unsupported catalog snapshot version")
	}
	return snap.Catalog, nil
}
