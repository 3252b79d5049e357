package listfilter

import (
	"reflect"
	"testing"
)

type record struct {
	Name   string
	Email  string
	Phone  string
	Status string
}

func recordField(r record, field string) string {
	switch field {
	case "name":
		return r.Name
	case "email":
		return r.Email
	case "phone":
		return r.Phone
	case "status":
		return r.Status
	}
	return ""
}

var searchFields = []string{"name", "email", "phone"}

func names(items []record) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.Name)
	}
	return out
}

func sample() []record {
	return []record{
		{"Arlene McCoy", "arlene.mccoy@example.com", "3025550107", "selected"},
		{"Guy Hawkins", "kenzi.lawson@example.com", "9075550101", "new"},
		{"Jacob William", "jacob.william@example.com", "2525550111", "new"},
		{"Leslie Alexander", "willie.jennings@example.com", "2075550119", "rejected"},
	}
}

func TestApplyIdentity(t *testing.T) {
	items := sample()
	got := Apply(items, Query{SearchFields: searchFields, Selections: map[string]string{"status": ""}}, recordField)

	if !reflect.DeepEqual(got, items) {
		t.Errorf("empty query must be identity, got %v", names(got))
	}
}

func TestApplyFreeText(t *testing.T) {
	items := sample()

	got := Apply(items, Query{Text: "arle", SearchFields: searchFields}, recordField)
	if want := []string{"Arlene McCoy"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("query %q: got %v, want %v", "arle", names(got), want)
	}

	// 大小写不敏感，且邮箱字段同样参与匹配
	got = Apply(items, Query{Text: "KENZI", SearchFields: searchFields}, recordField)
	if want := []string{"Guy Hawkins"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("query %q: got %v, want %v", "KENZI", names(got), want)
	}
}

func TestApplyCategoricalAndText(t *testing.T) {
	items := sample()

	q := Query{
		Text:         "a",
		SearchFields: searchFields,
		Selections:   map[string]string{"status": "selected"},
	}
	got := Apply(items, q, recordField)
	if want := []string{"Arlene McCoy"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("combined filter: got %v, want %v", names(got), want)
	}

	// 分类过滤是精确相等，前缀不算命中
	q.Selections["status"] = "select"
	if got := Apply(items, q, recordField); len(got) != 0 {
		t.Errorf("partial categorical value must not match, got %v", names(got))
	}
}

func TestApplyStableOrderAndRelax(t *testing.T) {
	items := sample()

	narrowed := Apply(items, Query{Text: "will", SearchFields: searchFields}, recordField)
	if want := []string{"Jacob William", "Leslie Alexander"}; !reflect.DeepEqual(names(narrowed), want) {
		t.Errorf("narrowed: got %v, want %v", names(narrowed), want)
	}

	// 放宽条件后从原始列表重算，顺序和成员完全恢复
	relaxed := Apply(items, Query{SearchFields: searchFields}, recordField)
	if !reflect.DeepEqual(relaxed, items) {
		t.Errorf("relaxing filters must restore the original list, got %v", names(relaxed))
	}
}

func TestPaginate(t *testing.T) {
	items := sample()

	if got := Paginate(items, 1, 3); len(got) != 3 || got[0].Name != "Arlene McCoy" {
		t.Errorf("page 1: got %v", names(got))
	}
	if got := Paginate(items, 2, 3); len(got) != 1 || got[0].Name != "Leslie Alexander" {
		t.Errorf("page 2: got %v", names(got))
	}
	if got := Paginate(items, 3, 3); len(got) != 0 {
		t.Errorf("page past end must be empty, got %v", names(got))
	}
	if got := Paginate(items, 0, 3); len(got) != 0 {
		t.Errorf("page 0 must be empty, got %v", names(got))
	}
}
