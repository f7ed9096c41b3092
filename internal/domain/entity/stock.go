package entity

// StockEntry representa la cantidad disponible de un item. Solo existen entradas con Quantity >= 1.
type StockEntry struct {
	Item     string
	Quantity int
}

// StockTable tabla item -> cantidad que conserva el orden de inserción.
// La ausencia de un item equivale a stock cero.
type StockTable struct {
	order []string
	qty   map[string]int
}

// NewStockTable construye una tabla vacía.
func NewStockTable() *StockTable {
	return &StockTable{qty: make(map[string]int)}
}

// Get devuelve la cantidad del item y si está presente.
func (t *StockTable) Get(item string) (int, bool) {
	q, ok := t.qty[item]
	return q, ok
}

// Set fija la cantidad del item. Una cantidad <= 0 elimina la entrada.
func (t *StockTable) Set(item string, qty int) {
	if qty <= 0 {
		t.Delete(item)
		return
	}
	if _, ok := t.qty[item]; !ok {
		t.order = append(t.order, item)
	}
	t.qty[item] = qty
}

// Delete elimina el item; no hace nada si no existe.
func (t *StockTable) Delete(item string) {
	if _, ok := t.qty[item]; !ok {
		return
	}
	delete(t.qty, item)
	for i, it := range t.order {
		if it == item {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Len número de items con stock.
func (t *StockTable) Len() int { return len(t.order) }

// Entries devuelve una copia de las entradas en orden de inserción.
func (t *StockTable) Entries() []StockEntry {
	out := make([]StockEntry, 0, len(t.order))
	for _, it := range t.order {
		out = append(out, StockEntry{Item: it, Quantity: t.qty[it]})
	}
	return out
}
