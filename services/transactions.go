package services

import (
	"encoding/json"

	"github.com/hollis-git/lineagebackend/repository"
)

// TransactionEntry is one record of a transaction audit list: the action
// taken, the class and handle of the object touched, and its serialized
// state before and after (null when not applicable).
type TransactionEntry struct {
	Type   string          `json:"type"`
	Handle string          `json:"handle"`
	Class  string          `json:"_class"`
	Old    json.RawMessage `json:"old"`
	New    json.RawMessage `json:"new"`
}

var txnActionNames = map[repository.TxnAction]string{
	repository.TxnAdd:    "add",
	repository.TxnUpdate: "update",
	repository.TxnDelete: "delete",
}

// DescribeTransaction converts a completed transaction's record log into
// the audit representation, in forward (replay) order.
func DescribeTransaction(txn *repository.Txn) []TransactionEntry {
	records := txn.Records()
	out := make([]TransactionEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, TransactionEntry{
			Type:   txnActionNames[rec.Action],
			Handle: rec.Handle,
			Class:  rec.Kind.Class(),
			Old:    json.RawMessage(rec.Old),
			New:    json.RawMessage(rec.New),
		})
	}
	return out
}
