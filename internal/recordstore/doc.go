// Package recordstore implements the local, transactional collection store the
// rest of the module is built on. Each collection is one SQLite table holding a
// JSON document per record; fields named by the declared secondary indexes are
// extracted into real columns so equality lookups go through SQL indexes instead
// of a table scan.
//
// The on-disk layout is versioned: Open applies the embedded, additive-only
// migrations up to the schema's declared version, which is a no-op for a store
// that is already up to date.
package recordstore
