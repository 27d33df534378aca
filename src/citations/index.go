// Package citations derives page navigation from the citations of the newest answer.
package citations

import (
	"fmt"
	"sort"

	"docchat/src/models"
)

// JumpFunc asks the document viewer to display a page.
type JumpFunc func(page int)

// Index is the ordered set of distinct cited pages plus a cursor into it.
// The cursor is valid whenever pages is non-empty; with no pages every navigation is a no-op.
type Index struct {
	pages  []int
	cursor int
	jump   JumpFunc
}

// NewIndex returns an empty index that drives the viewer through jump.
func NewIndex(jump JumpFunc) *Index {
	if jump == nil {
		jump = func(int) {}
	}
	return &Index{jump: jump}
}

// Rebuild replaces the page set from a citation list.
// Citations without a page (web citations) are dropped; the cursor resets to the first page.
func (ix *Index) Rebuild(cits []models.Citation) {
	seen := make(map[int]struct{}, len(cits))
	pages := make([]int, 0, len(cits))
	for _, c := range cits {
		if !c.HasPage() {
			continue
		}
		if _, ok := seen[c.Page]; ok {
			continue
		}
		seen[c.Page] = struct{}{}
		pages = append(pages, c.Page)
	}
	sort.Ints(pages)
	ix.pages = pages
	ix.cursor = 0
}

// Reset clears the page set.
func (ix *Index) Reset() {
	ix.pages = nil
	ix.cursor = 0
}

// Next advances the cursor circularly and shows its page.
func (ix *Index) Next() {
	n := len(ix.pages)
	if n == 0 {
		return
	}
	ix.cursor = (ix.cursor + 1) % n
	ix.jump(ix.pages[ix.cursor])
}

// Previous retreats the cursor circularly and shows its page.
func (ix *Index) Previous() {
	n := len(ix.pages)
	if n == 0 {
		return
	}
	ix.cursor = (ix.cursor - 1 + n) % n
	ix.jump(ix.pages[ix.cursor])
}

// First moves to the lowest cited page.
func (ix *Index) First() {
	if len(ix.pages) == 0 {
		return
	}
	ix.cursor = 0
	ix.jump(ix.pages[0])
}

// JumpTo shows page. The cursor follows only when page is in the set,
// but the viewer is asked to display page either way.
func (ix *Index) JumpTo(page int) {
	if i, ok := ix.position(page); ok {
		ix.cursor = i
	}
	ix.jump(page)
}

func (ix *Index) position(page int) (int, bool) {
	i := sort.SearchInts(ix.pages, page)
	if i < len(ix.pages) && ix.pages[i] == page {
		return i, true
	}
	return 0, false
}

// Has reports whether page is cited.
func (ix *Index) Has(page int) bool {
	_, ok := ix.position(page)
	return ok
}

// Pages returns a copy of the cited pages in ascending order.
func (ix *Index) Pages() []int {
	return append([]int(nil), ix.pages...)
}

// Len is the number of distinct cited pages.
func (ix *Index) Len() int {
	return len(ix.pages)
}

// Cursor returns the cursor, or false when there are no pages.
func (ix *Index) Cursor() (int, bool) {
	if len(ix.pages) == 0 {
		return 0, false
	}
	return ix.cursor, true
}

// Current returns the page under the cursor, or false when there are no pages.
func (ix *Index) Current() (int, bool) {
	if len(ix.pages) == 0 {
		return 0, false
	}
	return ix.pages[ix.cursor], true
}

// Label renders the cursor position as "i / n", or "" when empty.
func (ix *Index) Label() string {
	if len(ix.pages) == 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", ix.cursor+1, len(ix.pages))
}
