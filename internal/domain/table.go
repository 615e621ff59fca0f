package domain

// TableCategory категория стола
type TableCategory string

const (
	// TableReserved стол зарезервирован под организацию, не бронируется
	TableReserved TableCategory = "reserved"
	// TableStandard обычный стол для гостей
	TableStandard TableCategory = "standard"
)

// Table физический стол зала
type Table struct {
	ID       string
	Category TableCategory
	Capacity int
}

// Catalog неизменяемая планировка зала: стол → вместимость.
// Строится один раз при старте процесса; пути мутации после
// конструктора нет намеренно.
type Catalog struct {
	tables       map[string]Table
	reservedIDs  []string
	standardIDs  []string
	standardCap  int
}

// NewCatalog строит каталог из двух упорядоченных списков столов.
// Зарезервированные столы получают вместимость 0, стандартные — standardSeats.
func NewCatalog(reservedIDs, standardIDs []string, standardSeats int) *Catalog {
	tables := make(map[string]Table, len(reservedIDs)+len(standardIDs))

	for _, id := range reservedIDs {
		tables[id] = Table{ID: id, Category: TableReserved, Capacity: 0}
	}
	for _, id := range standardIDs {
		tables[id] = Table{ID: id, Category: TableStandard, Capacity: standardSeats}
	}

	return &Catalog{
		tables:      tables,
		reservedIDs: append([]string(nil), reservedIDs...),
		standardIDs: append([]string(nil), standardIDs...),
		standardCap: standardSeats,
	}
}

// DefaultCatalog строит каталог с планировкой зала по умолчанию
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultReservedTables, DefaultStandardTables, StandardTableSeats)
}

// Capacity возвращает вместимость стола и признак его существования
func (c *Catalog) Capacity(tableID string) (int, bool) {
	t, ok := c.tables[tableID]
	if !ok {
		return 0, false
	}
	return t.Capacity, true
}

// Bookable возвращает true, если стол существует и его можно бронировать
func (c *Catalog) Bookable(tableID string) bool {
	t, ok := c.tables[tableID]
	return ok && t.Capacity > 0
}

// ReservedIDs возвращает копию списка зарезервированных столов
func (c *Catalog) ReservedIDs() []string {
	return append([]string(nil), c.reservedIDs...)
}

// StandardIDs возвращает копию списка стандартных столов
func (c *Catalog) StandardIDs() []string {
	return append([]string(nil), c.standardIDs...)
}

// StandardCapacity возвращает вместимость стандартного стола
func (c *Catalog) StandardCapacity() int {
	return c.standardCap
}

// Len возвращает общее количество столов
func (c *Catalog) Len() int {
	return len(c.tables)
}
