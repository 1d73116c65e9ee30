package repository

// TxnAction classifies one record of a transaction log.
type TxnAction int

const (
	TxnAdd TxnAction = iota
	TxnUpdate
	TxnDelete
)

// TxnRecord is one entry of a transaction's ordered log. Old and New hold
// the serialized object before and after the action; Old is nil for adds,
// New is nil for deletes.
type TxnRecord struct {
	Kind   Kind
	Action TxnAction
	Handle string
	Old    []byte
	New    []byte
}

// Txn collects the ordered record log of one store transaction. The store
// appends to it on every add/commit/delete performed inside the
// transaction scope; it never commits anything on its own.
type Txn struct {
	Description string
	records     []TxnRecord
}

func (t *Txn) append(rec TxnRecord) {
	t.records = append(t.records, rec)
}

// Records returns the log in forward (replay) order.
func (t *Txn) Records() []TxnRecord {
	return t.records
}
