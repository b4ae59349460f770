package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

func TestMemoryStoreInsertAssignsID(t *testing.T) {
	store := repositories.NewMemoryProductStore()

	first := store.Insert(models.Product{Name: "Desk", Category: "furniture"})
	second := store.Insert(models.Product{Name: "Chair", Category: "furniture"})

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryStoreInsertKeepsProvidedID(t *testing.T) {
	store := repositories.NewMemoryProductStore()

	seeded := store.Insert(models.Product{ID: "seed-1", Name: "Desk"})

	assert.Equal(t, "seed-1", seeded.ID)
}

func TestMemoryStoreListAllIsSnapshot(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.Insert(models.Product{ID: "1", Name: "Desk"})
	store.Insert(models.Product{ID: "2", Name: "Chair"})

	snapshot := store.ListAll()
	snapshot[0].Name = "mutated"
	snapshot[1] = models.Product{}

	fresh := store.ListAll()
	assert.Equal(t, "Desk", fresh[0].Name)
	assert.Equal(t, "Chair", fresh[1].Name)
}

func TestMemoryStoreListAllPreservesInsertionOrder(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.Insert(models.Product{ID: "a"})
	store.Insert(models.Product{ID: "b"})
	store.Insert(models.Product{ID: "c"})

	products := store.ListAll()
	assert.Equal(t, []string{"a", "b", "c"}, []string{products[0].ID, products[1].ID, products[2].ID})
}

func TestMemoryStoreFindByID(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.Insert(models.Product{ID: "1", Name: "Desk"})

	found, err := store.FindByID("1")
	assert.NoError(t, err)
	assert.Equal(t, "Desk", found.Name)

	_, err = store.FindByID("99")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestMemoryStoreFindIndexByID(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.Insert(models.Product{ID: "1"})
	store.Insert(models.Product{ID: "2"})

	index, err := store.FindIndexByID("2")
	assert.NoError(t, err)
	assert.Equal(t, 1, index)

	index, err = store.FindIndexByID("99")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Equal(t, -1, index)
}

func TestMemoryStoreReplaceAt(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.Insert(models.Product{ID: "1", Name: "Desk"})

	err := store.ReplaceAt(0, models.Product{ID: "1", Name: "Standing Desk"})
	assert.NoError(t, err)

	found, err := store.FindByID("1")
	assert.NoError(t, err)
	assert.Equal(t, "Standing Desk", found.Name)

	assert.ErrorIs(t, store.ReplaceAt(5, models.Product{}), repositories.ErrProductNotFound)
	assert.ErrorIs(t, store.ReplaceAt(-1, models.Product{}), repositories.ErrProductNotFound)
}

func TestMemoryStoreRemoveAt(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.Insert(models.Product{ID: "a"})
	store.Insert(models.Product{ID: "b"})
	store.Insert(models.Product{ID: "c"})

	removed, err := store.RemoveAt(1)
	assert.NoError(t, err)
	assert.Equal(t, "b", removed.ID)

	products := store.ListAll()
	assert.Len(t, products, 2)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "c", products[1].ID)

	_, err = store.RemoveAt(7)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
