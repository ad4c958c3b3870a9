package domain

import (
	"encoding/json"
	"testing"
)

func TestSubcategoryUnmarshalLegacyString(t *testing.T) {
	// 旧库里子分类是裸字符串数组
	var ss Subcategories
	if err := json.Unmarshal([]byte(`["Mango", {"name":"Apple","image":"data:image/png;base64,AAAA"}]`), &ss); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(ss) != 2 {
		t.Fatalf("len = %d, want 2", len(ss))
	}
	if ss[0].Name != "Mango" || ss[0].Image != "" {
		t.Errorf("legacy string = %+v, want {Mango, \"\"}", ss[0])
	}
	if ss[1].Name != "Apple" || ss[1].Image == "" {
		t.Errorf("object form = %+v", ss[1])
	}
}

func TestValidInlineImage(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true}, // 空图片合法（可选字段）
		{"data:image/png;base64,iVBORw0KGgo=", true},
		{"data:image/jpeg;base64,AAAA", true},
		{"data:image/jpg;base64,AAAA", true},
		{"data:image/gif;base64,AAAA", true},
		{"data:image/webp;base64,AAAA", true},
		{"data:image/bmp;base64,AAAA", false},
		{"data:image/svg+xml;base64,AAAA", false},
		{"https://cdn.example.com/a.png", false},
		{"iVBORw0KGgo=", false},
	}
	for _, tt := range tests {
		if got := ValidInlineImage(tt.in); got != tt.want {
			t.Errorf("ValidInlineImage(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSubcategoriesContains(t *testing.T) {
	ss := Subcategories{{Name: "Mango"}, {Name: "Apple"}}
	if !ss.Contains("Mango") {
		t.Error("Mango missing")
	}
	if ss.Contains("mango") {
		t.Error("match must be case sensitive")
	}
	if ss.Contains("Banana") {
		t.Error("Banana should not match")
	}
}

func TestNormalizeSubcategories(t *testing.T) {
	out, ok := NormalizeSubcategories(Subcategories{{Name: " Mango "}, {Name: "Apple", Image: "x"}})
	if !ok {
		t.Fatal("normalize rejected valid input")
	}
	if out[0].Name != "Mango" || out[1].Image != "x" {
		t.Errorf("normalized = %+v", out)
	}
	if _, ok := NormalizeSubcategories(Subcategories{{Name: "  "}}); ok {
		t.Error("blank name accepted")
	}
}
