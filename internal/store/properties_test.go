package store

import (
	"testing"

	"pgregory.net/rapid"
)

// The store must behave exactly like a plain map guarded by the uniqueness
// and existence contracts, under any interleaving of operations.
func TestKeyedStoreMatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New[testEntity]("model")
		model := make(map[int]testEntity)

		idGen := rapid.IntRange(0, 20)
		payloadGen := rapid.StringMatching(`[a-z]{1,8}`)

		t.Repeat(map[string]func(*rapid.T){
			"insert": func(t *rapid.T) {
				e := testEntity{ID: idGen.Draw(t, "id"), Payload: payloadGen.Draw(t, "payload")}
				err := s.Insert(e)
				if _, taken := model[e.ID]; taken {
					if !IsDuplicateError(err) {
						t.Fatalf("insert over taken id %d: want duplicate error, got %v", e.ID, err)
					}
				} else {
					if err != nil {
						t.Fatalf("insert into free id %d: %v", e.ID, err)
					}
					model[e.ID] = e
				}
			},
			"remove": func(t *rapid.T) {
				id := idGen.Draw(t, "id")
				err := s.Remove(id)
				if _, present := model[id]; present {
					if err != nil {
						t.Fatalf("remove of present id %d: %v", id, err)
					}
					delete(model, id)
				} else if !IsNotFoundError(err) {
					t.Fatalf("remove of absent id %d: want not found, got %v", id, err)
				}
			},
			"update": func(t *rapid.T) {
				id := idGen.Draw(t, "id")
				payload := payloadGen.Draw(t, "payload")
				err := s.Update(id, func(e testEntity) (testEntity, error) {
					e.Payload = payload
					return e, nil
				})
				if _, present := model[id]; present {
					if err != nil {
						t.Fatalf("update of present id %d: %v", id, err)
					}
					model[id] = testEntity{ID: id, Payload: payload}
				} else if !IsNotFoundError(err) {
					t.Fatalf("update of absent id %d: want not found, got %v", id, err)
				}
			},
			"get": func(t *rapid.T) {
				id := idGen.Draw(t, "id")
				got, err := s.GetByID(id)
				want, present := model[id]
				if present {
					if err != nil || got != want {
						t.Fatalf("get of id %d: got (%v, %v), want %v", id, got, err, want)
					}
				} else if !IsNotFoundError(err) {
					t.Fatalf("get of absent id %d: want not found, got %v", id, err)
				}
			},
			"": func(t *rapid.T) {
				// Invariant checked between every pair of operations.
				if s.Len() != len(model) {
					t.Fatalf("length drift: store %d, model %d", s.Len(), len(model))
				}
				for _, e := range s.GetAll() {
					if model[e.ID] != e {
						t.Fatalf("snapshot entity %v disagrees with model %v", e, model[e.ID])
					}
				}
			},
		})
	})
}
