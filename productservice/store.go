package productservice

import (
	"sync"

	"github.com/qa-tech/product-contract-tests/productdef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Store holds product records in memory. Every key equals the id field of its record. Records
// are added by Create and changed by PartialUpdate; they are never removed.
//
// Records are immutable ldvalue objects, so values returned by the store can be shared freely.
type Store struct {
	mu       sync.RWMutex
	products map[int]ldvalue.Value
	nextID   int
}

// NewStore returns a store that contains only the seed product.
func NewStore() *Store {
	s := &Store{
		products: make(map[int]ldvalue.Value),
		nextID:   productdef.FirstAssignedID,
	}
	s.products[productdef.SeedProductID] = productdef.SeedProduct()
	return s
}

// Fetch returns the product with the given id.
func (s *Store) Fetch(id int) (ldvalue.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return ldvalue.Null(), errUnknownProduct
	}
	return p, nil
}

// Create stores payload under the next id and returns the stored record. Any id in the payload
// is replaced.
func (s *Store) Create(payload ldvalue.Value) (ldvalue.Value, error) {
	if payload.Type() != ldvalue.ObjectType {
		return ldvalue.Null(), errInvalidJSON
	}
	if productdef.HasNegativePrice(payload) {
		return ldvalue.Null(), errNegativePrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	p := productdef.With(payload, productdef.FieldID, ldvalue.Int(id))
	s.products[id] = p
	s.nextID++
	return p, nil
}

// PartialUpdate merges patch into the product with the given id. The checks run in a fixed
// order: existence, then price, then id. The record is only changed if all of them pass.
func (s *Store) PartialUpdate(id int, patch ldvalue.Value) (ldvalue.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return ldvalue.Null(), errUnknownProduct
	}
	if patch.Type() != ldvalue.ObjectType {
		return ldvalue.Null(), errInvalidJSON
	}
	if productdef.HasNegativePrice(patch) {
		return ldvalue.Null(), errNegativePrice
	}
	if productdef.HasField(patch, productdef.FieldID) {
		return ldvalue.Null(), errIDImmutable
	}

	p = productdef.Merge(p, patch)
	s.products[id] = p
	return p, nil
}

// Delete is not supported for any id.
func (s *Store) Delete(id int) error {
	return errUnsupported
}

// Len returns the number of stored products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
