package cafe

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/cafe-api/internal/httperr"
)

const testKey = "TopSecretAPIKey"

func validForm(name, location string) map[string]string {
	return map[string]string{
		"name":           name,
		"map_url":        "https://maps.example/" + name,
		"img_url":        "https://img.example/" + name,
		"location":       location,
		"seats":          "20-30",
		"has_toilet":     "1",
		"has_wifi":       "1",
		"has_sockets":    "",
		"can_take_calls": "",
		"coffee_price":   "£2.40",
	}
}

func mustAdd(t *testing.T, s *Service, form map[string]string) uint {
	t.Helper()
	c, err := s.Add(context.Background(), FormFields(form))
	if err != nil {
		t.Fatalf("Add(%q): %v", form["name"], err)
	}
	return c.ID
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"true", true},
		{"false", true},
		{"0", true},
		{"yes", true},
		{" ", true},
	}
	for _, tc := range tests {
		if got := ParseFlag(tc.in); got != tc.want {
			t.Errorf("ParseFlag(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAddCoercesFlags(t *testing.T) {
	s := NewService(newFakeRepo(), testKey)

	c, err := s.Add(context.Background(), FormFields(map[string]string{
		"name":           "Cafe X",
		"location":       "Town",
		"seats":          "10",
		"has_wifi":       "true",
		"has_toilet":     "",
		"has_sockets":    "yes",
		"can_take_calls": "1",
		"map_url":        "m",
		"img_url":        "i",
		"coffee_price":   "£2",
	}))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if !c.HasWifi || c.HasToilet || !c.HasSockets || !c.CanTakeCalls {
		t.Fatalf("flags = wifi:%v toilet:%v sockets:%v calls:%v", c.HasWifi, c.HasToilet, c.HasSockets, c.CanTakeCalls)
	}
	if c.CoffeePrice == nil || *c.CoffeePrice != "£2" {
		t.Fatalf("coffee_price = %v, want £2", c.CoffeePrice)
	}
	if c.ID == 0 {
		t.Fatal("id not assigned")
	}
}

func TestAddMissingField(t *testing.T) {
	s := NewService(newFakeRepo(), testKey)

	for _, key := range requiredFields {
		key := key
		t.Run(key, func(t *testing.T) {
			form := validForm("Cafe "+key, "Town")
			delete(form, key)

			_, err := s.Add(context.Background(), FormFields(form))
			if !httperr.IsBusiness(err, httperr.CodeMissingField) {
				t.Fatalf("err = %v, want missing_field", err)
			}
			if got := httperr.FieldOf(err); got != key {
				t.Fatalf("field = %q, want %q", got, key)
			}
		})
	}
}

func TestAddWithoutPrice(t *testing.T) {
	s := NewService(newFakeRepo(), testKey)
	form := validForm("No Price", "Town")
	delete(form, "coffee_price")

	c, err := s.Add(context.Background(), FormFields(form))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.CoffeePrice != nil {
		t.Fatalf("coffee_price = %q, want nil", *c.CoffeePrice)
	}
}

func TestAddDuplicateName(t *testing.T) {
	s := NewService(newFakeRepo(), testKey)
	mustAdd(t, s, validForm("Dup", "Town"))

	_, err := s.Add(context.Background(), FormFields(validForm("Dup", "Elsewhere")))
	if !httperr.IsBusiness(err, httperr.CodeDuplicateName) {
		t.Fatalf("err = %v, want duplicate_name", err)
	}
}

func TestGetRandom(t *testing.T) {
	repo := newFakeRepo()

	t.Run("empty table", func(t *testing.T) {
		s := NewService(repo, testKey)
		_, err := s.GetRandom(context.Background())
		if !httperr.IsBusiness(err, httperr.CodeEmptyCollection) {
			t.Fatalf("err = %v, want empty_collection", err)
		}
	})

	t.Run("skips deleted ids", func(t *testing.T) {
		s := NewService(repo, testKey)
		first := mustAdd(t, s, validForm("A", "Town"))
		mustAdd(t, s, validForm("B", "Town"))
		third := mustAdd(t, s, validForm("C", "Town"))

		if err := s.Delete(context.Background(), first, testKey); err != nil {
			t.Fatalf("Delete: %v", err)
		}

		// live ids are [2, 3]; index 1 must resolve to the third row.
		var asked int
		s = NewService(repo, testKey, WithPicker(func(n int) int {
			asked = n
			return n - 1
		}))

		c, err := s.GetRandom(context.Background())
		if err != nil {
			t.Fatalf("GetRandom: %v", err)
		}
		if asked != 2 {
			t.Fatalf("picker bound = %d, want 2", asked)
		}
		if c.ID != third {
			t.Fatalf("id = %d, want %d", c.ID, third)
		}
	})
}

func TestSearch(t *testing.T) {
	s := NewService(newFakeRepo(), testKey)
	mustAdd(t, s, validForm("One", "Peckham"))
	mustAdd(t, s, validForm("Two", "peckham"))
	mustAdd(t, s, validForm("Three", "Peckham"))

	tests := []struct {
		loc   string
		count int
	}{
		{"Peckham", 2},
		{"peckham", 1},
		{"Peckham ", 0},
		{"Nowhere", 0},
	}
	for _, tc := range tests {
		cafes, found, err := s.Search(context.Background(), tc.loc)
		if err != nil {
			t.Fatalf("Search(%q): %v", tc.loc, err)
		}
		if len(cafes) != tc.count || found != (tc.count > 0) {
			t.Fatalf("Search(%q) = %d rows found=%v, want %d", tc.loc, len(cafes), found, tc.count)
		}
		for _, c := range cafes {
			if c.Location != tc.loc {
				t.Fatalf("Search(%q) returned location %q", tc.loc, c.Location)
			}
		}
	}
}

func TestUpdateFull(t *testing.T) {
	s := NewService(newFakeRepo(), testKey)
	id := mustAdd(t, s, validForm("Old", "Town"))
	mustAdd(t, s, validForm("Taken", "Town"))

	form := validForm("New", "City")
	form["has_toilet"] = ""
	c, err := s.UpdateFull(context.Background(), id, FormFields(form))
	if err != nil {
		t.Fatalf("UpdateFull: %v", err)
	}
	if c.ID != id || c.Name != "New" || c.Location != "City" || c.HasToilet {
		t.Fatalf("updated = %+v", c)
	}

	if _, err := s.UpdateFull(context.Background(), 999, FormFields(form)); !httperr.IsBusiness(err, httperr.CodeCafeNotFound) {
		t.Fatalf("unknown id err = %v, want cafe_not_found", err)
	}

	if _, err := s.UpdateFull(context.Background(), id, FormFields(validForm("Taken", "City"))); !httperr.IsBusiness(err, httperr.CodeDuplicateName) {
		t.Fatalf("rename err = %v, want duplicate_name", err)
	}

	partial := validForm("Partial", "City")
	delete(partial, "seats")
	if _, err := s.UpdateFull(context.Background(), id, FormFields(partial)); !httperr.IsBusiness(err, httperr.CodeMissingField) {
		t.Fatalf("partial err = %v, want missing_field", err)
	}
}

func TestUpdatePrice(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(repo, testKey)
	id := mustAdd(t, s, validForm("Priced", "Town"))

	price := "£3"
	c, err := s.UpdatePrice(context.Background(), id, &price)
	if err != nil {
		t.Fatalf("UpdatePrice: %v", err)
	}
	if *c.CoffeePrice != "£3" {
		t.Fatalf("price = %q", *c.CoffeePrice)
	}

	c, err = s.UpdatePrice(context.Background(), id, nil)
	if err != nil {
		t.Fatalf("UpdatePrice(nil): %v", err)
	}
	if c.CoffeePrice != nil {
		t.Fatalf("price = %q, want cleared", *c.CoffeePrice)
	}

	before, _ := repo.List(context.Background())
	_, err = s.UpdatePrice(context.Background(), id+100, &price)
	if !httperr.IsBusiness(err, httperr.CodeCafeNotFound) {
		t.Fatalf("err = %v, want cafe_not_found", err)
	}
	after, _ := repo.List(context.Background())
	if len(before) != len(after) || before[0].CoffeePrice != nil || after[0].CoffeePrice != nil {
		t.Fatal("table changed after failed update")
	}
}

func TestDelete(t *testing.T) {
	s := NewService(newFakeRepo(), testKey)
	keep := mustAdd(t, s, validForm("Keep", "Town"))
	gone := mustAdd(t, s, validForm("Gone", "Town"))

	if err := s.Delete(context.Background(), gone, "wrong"); !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("wrong key err = %v, want forbidden", err)
	}
	if err := s.Delete(context.Background(), 999, "wrong"); !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("wrong key on unknown id err = %v, want forbidden", err)
	}
	if err := s.Delete(context.Background(), 999, testKey); !httperr.IsBusiness(err, httperr.CodeCafeNotFound) {
		t.Fatalf("unknown id err = %v, want cafe_not_found", err)
	}
	if err := s.Delete(context.Background(), gone, testKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	all, _ := s.GetAll(context.Background())
	if len(all) != 1 || all[0].ID != keep {
		t.Fatalf("remaining = %+v, want only %d", all, keep)
	}
}

func TestImport(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(repo, testKey)
	mustAdd(t, s, validForm("Existing", "Town"))

	missing := validForm("Missing", "Town")
	delete(missing, "img_url")

	res, err := s.Import(context.Background(), []map[string]string{
		validForm("Fresh", "Town"),
		validForm("Existing", "Town"),
		missing,
		validForm("Another", "City"),
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Added != 2 || res.Skipped != 2 {
		t.Fatalf("result = %+v, want 2 added 2 skipped", res)
	}

	repo.fail = true
	if _, err := s.Import(context.Background(), []map[string]string{validForm("Late", "Town")}); !errors.Is(err, errStore) {
		t.Fatalf("err = %v, want store error", err)
	}
}
