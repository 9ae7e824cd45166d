package recordstore

// Index declares a secondary index over one or more document fields.
// Fields holds the JSON field names inside the stored document; Columns holds
// the backing table columns, position for position. A composite index matches
// only on equality of all components.
type Index struct {
	Name    string
	Fields  []string
	Columns []string
	Unique  bool
}

// Collection declares one named record collection: its table, the key column,
// and the secondary indexes it carries.
type Collection struct {
	Name      string
	KeyColumn string
	Indexes   []Index
}

// indexedColumns returns the distinct (column, field) pairs covered by the
// collection's indexes, in declaration order. Composite indexes contribute one
// pair per component; columns shared between indexes appear once.
func (c Collection) indexedColumns() []indexedColumn {
	var out []indexedColumn
	seen := map[string]bool{}
	for _, idx := range c.Indexes {
		for i, col := range idx.Columns {
			if seen[col] {
				continue
			}
			seen[col] = true
			out = append(out, indexedColumn{column: col, field: idx.Fields[i]})
		}
	}
	return out
}

type indexedColumn struct {
	column string
	field  string
}

// Schema is the full declared layout of the store at a given version.
type Schema struct {
	Version     int64
	Collections []Collection
}

func (s Schema) collection(name string) (Collection, bool) {
	for _, c := range s.Collections {
		if c.Name == name {
			return c, true
		}
	}
	return Collection{}, false
}

// Collection and index names of the inspection domain.
const (
	CollectionSettings    = "settings"
	CollectionLocations   = "locations"
	CollectionInspections = "inspections"
	CollectionEquipment   = "equipment"
	CollectionIssues      = "issues"
	CollectionMedia       = "media"

	IndexByLocation   = "by_location"
	IndexByInspection = "by_inspection"
	IndexByEquipment  = "by_equipment"
	IndexByParent     = "by_parent"
)

// DefaultSchema declares the six collections of the field-inspection domain.
// It must stay in sync with the embedded SQL migrations; TestSchemaMatchesTables
// checks that.
func DefaultSchema() Schema {
	return Schema{
		Version: 2,
		Collections: []Collection{
			{Name: CollectionSettings, KeyColumn: "key"},
			{Name: CollectionLocations, KeyColumn: "id"},
			{
				Name:      CollectionInspections,
				KeyColumn: "id",
				Indexes: []Index{
					{Name: IndexByLocation, Fields: []string{"locationId"}, Columns: []string{"location_id"}},
				},
			},
			{
				Name:      CollectionEquipment,
				KeyColumn: "id",
				Indexes: []Index{
					{Name: IndexByInspection, Fields: []string{"inspectionId"}, Columns: []string{"inspection_id"}},
				},
			},
			{
				Name:      CollectionIssues,
				KeyColumn: "id",
				Indexes: []Index{
					{Name: IndexByEquipment, Fields: []string{"equipmentId"}, Columns: []string{"equipment_id"}},
				},
			},
			{
				Name:      CollectionMedia,
				KeyColumn: "id",
				Indexes: []Index{
					{Name: IndexByParent, Fields: []string{"parentType", "parentId"}, Columns: []string{"parent_type", "parent_id"}},
					{Name: IndexByInspection, Fields: []string{"inspectionId"}, Columns: []string{"inspection_id"}},
				},
			},
		},
	}
}
