package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"lmp/entities"
)

func testRepo(t *testing.T) *stateRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&entities.StateDocument{}); err != nil {
		t.Fatal(err)
	}
	return &stateRepo{db}
}

func TestGetMissingKey(t *testing.T) {
	r := testRepo(t)
	_, found, err := r.Get("nope")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("missing key reported as found")
	}
}

func TestPutGetOverwrite(t *testing.T) {
	r := testRepo(t)
	if err := r.Put("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := r.Put("k", "v2"); err != nil {
		t.Fatal(err)
	}
	v, found, err := r.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if !found || v != "v2" {
		t.Errorf("Get = %q, %v; want v2", v, found)
	}
}

func TestDelete(t *testing.T) {
	r := testRepo(t)
	for _, k := range []string{"a", "b", "c"} {
		if err := r.Put(k, "x"); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Delete("a", "b", "missing"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := r.Get("a"); found {
		t.Error("a not deleted")
	}
	if _, found, _ := r.Get("c"); !found {
		t.Error("c should survive")
	}
	// empty key list is a no-op
	if err := r.Delete(); err != nil {
		t.Fatal(err)
	}
}
