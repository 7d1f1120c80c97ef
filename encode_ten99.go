package accounts

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// 1099 settings live in two tabular sources, a "people" sheet and a
// "categories" sheet. The importer consumes the spreadsheet-export JSON
// document produced for both tabs at once:
//
//	{"valueRanges": [
//	  {"range": "People!A1:D", "values": [["name","taxid","address","othernames"], ...]},
//	  {"range": "Categories!A1:B", "values": [["name","alwaysreport"], ...]}
//	]}
//
// Each tab's first row is a header naming its columns; column order is
// whatever the sheet uses.

const (
	peopleSheet     = "people"
	categoriesSheet = "categories"
)

// DecodeTen99Settings parses the export document into typed settings.
func DecodeTen99Settings(r io.Reader) (Ten99Settings, error) {
	var settings Ten99Settings

	raw, err := io.ReadAll(r)
	if err != nil {
		return settings, fmt.Errorf("could not read 1099 settings: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return settings, fmt.Errorf("1099 settings is not valid JSON: %w", err)
	}

	path := "$.valueRanges[*]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return settings, fmt.Errorf("1099 settings: %q: %w", path, err)
	}
	jranges, ok := jval.([]any)
	if !ok || len(jranges) == 0 {
		return settings, structuralf("", 0, "1099 settings has no value ranges")
	}

	for _, jrange := range jranges {
		sheet, rows, err := decodeValueRange(jrange)
		if err != nil {
			return settings, err
		}
		switch {
		case strings.HasPrefix(strings.ToLower(sheet), peopleSheet):
			settings.People, err = decodePeople(rows)
		case strings.HasPrefix(strings.ToLower(sheet), categoriesSheet):
			settings.Categories, err = decodeCategories(rows)
		default:
			// Unknown tabs in the export are ignored.
			continue
		}
		if err != nil {
			return settings, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	if len(settings.People) == 0 {
		return settings, structuralf("", 0, "1099 settings has no people sheet or it is empty")
	}
	if len(settings.Categories) == 0 {
		return settings, structuralf("", 0, "1099 settings has no categories sheet or it is empty")
	}
	return settings, nil
}

// decodeValueRange extracts a tab's sheet name and its rows of cells.
func decodeValueRange(jrange any) (sheet string, rows [][]string, err error) {
	jmap, ok := jrange.(map[string]any)
	if !ok {
		return "", nil, structuralf("", 0, "value range is not an object")
	}
	rangeName, _ := jmap["range"].(string)
	// "People!A1:D" -> "People"; quoted sheet names keep their quotes trimmed.
	sheet = strings.Trim(strings.SplitN(rangeName, "!", 2)[0], "'")

	jrows, ok := jmap["values"].([]any)
	if !ok {
		return sheet, nil, structuralf("", 0, "value range %q has no values", rangeName)
	}
	for _, jrow := range jrows {
		jcells, ok := jrow.([]any)
		if !ok {
			continue
		}
		row := make([]string, len(jcells))
		for i, jcell := range jcells {
			// Cells arrive as strings from the export; anything else is
			// formatted through fmt as a fallback.
			if s, ok := jcell.(string); ok {
				row[i] = s
			} else {
				row[i] = fmt.Sprint(jcell)
			}
		}
		rows = append(rows, row)
	}
	return sheet, rows, nil
}

// headerIndex maps lowercased header names to their column.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

// cell returns the named column of a row, or "".
func cell(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func decodePeople(rows [][]string) ([]Ten99Person, error) {
	if len(rows) < 2 {
		return nil, structuralf("", 0, "people sheet needs a header row and at least one person")
	}
	index := headerIndex(rows[0])
	if _, ok := index["name"]; !ok {
		return nil, structuralf("", 0, "people sheet header has no %q column", "name")
	}

	var people []Ten99Person
	for i, row := range rows[1:] {
		name := cell(row, index, "name")
		if name == "" {
			return nil, structuralf("", i+2, "person has no name")
		}
		person := Ten99Person{
			Name:    name,
			TaxID:   cell(row, index, "taxid"),
			Address: cell(row, index, "address"),
		}
		for _, other := range strings.Split(cell(row, index, "othernames"), ";") {
			if other = strings.TrimSpace(other); other != "" {
				person.OtherNames = append(person.OtherNames, other)
			}
		}
		people = append(people, person)
	}
	return people, nil
}

func decodeCategories(rows [][]string) ([]Ten99Category, error) {
	if len(rows) < 2 {
		return nil, structuralf("", 0, "categories sheet needs a header row and at least one category")
	}
	index := headerIndex(rows[0])
	if _, ok := index["name"]; !ok {
		return nil, structuralf("", 0, "categories sheet header has no %q column", "name")
	}

	var categories []Ten99Category
	for i, row := range rows[1:] {
		name := cell(row, index, "name")
		if name == "" {
			return nil, structuralf("", i+2, "category has no name")
		}
		if _, err := ParseCategory(name); err != nil {
			return nil, err
		}
		categories = append(categories, Ten99Category{
			Name:         name,
			AlwaysReport: truthy(cell(row, index, "alwaysreport")),
		})
	}
	return categories, nil
}

// truthy interprets the spreadsheet checkbox spellings.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "x", "1":
		return true
	default:
		return false
	}
}
