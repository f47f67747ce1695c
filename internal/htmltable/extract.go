package htmltable

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Extract returns every table in the document, in document order:
// first tables rendered normally, then tables found inside HTML comment
// nodes. Both representations are always checked because the same page
// can mix them. tableID, when non-empty, filters to tables whose id
// attribute matches. Extraction never fails; a document with no matching
// tables yields an empty slice.
func Extract(document, tableID string) []Table {
	var tables []Table

	tables = append(tables, parseTables(document, tableID)...)

	for _, comment := range commentBlocks(document) {
		if !strings.Contains(comment, "table") {
			continue
		}
		tables = append(tables, parseTables(comment, tableID)...)
	}

	return tables
}

// commentBlocks returns the text of every HTML comment node in the
// document.
func commentBlocks(document string) []string {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return nil
	}

	var comments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.CommentNode {
			comments = append(comments, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return comments
}

// parseTables parses an HTML fragment and converts each matching <table>
// element. Parse failures are swallowed: a fragment that is not valid
// HTML simply contributes zero tables.
func parseTables(fragment, tableID string) []Table {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var tables []Table
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		id := sel.AttrOr("id", "")
		if tableID != "" && id != tableID {
			return
		}
		if t := parseTable(sel, id); t != nil {
			tables = append(tables, *t)
		}
	})
	return tables
}

func parseTable(sel *goquery.Selection, id string) *Table {
	t := &Table{ID: id}

	// Sources often stack grouping rows above the real header; the last
	// thead row is the one naming the columns.
	headerRow := sel.Find("thead tr").Last()
	bodyRows := sel.Find("tbody tr")

	if headerRow.Length() == 0 {
		// No thead: treat the first row as the header.
		all := sel.Find("tr")
		if all.Length() == 0 {
			return nil
		}
		headerRow = all.First()
		bodyRows = all.Slice(1, all.Length())
	}

	headerRow.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		t.Columns = append(t.Columns, strings.TrimSpace(cell.Text()))
	})
	if len(t.Columns) == 0 {
		return nil
	}

	bodyRows.Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})
		if len(row) == 0 {
			return
		}
		// Normalize ragged rows to the header width.
		for len(row) < len(t.Columns) {
			row = append(row, Missing)
		}
		if len(row) > len(t.Columns) {
			row = row[:len(t.Columns)]
		}
		t.Rows = append(t.Rows, row)
	})

	return t
}
