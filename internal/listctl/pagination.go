// ABOUTME: Page-number window computation for pagination footers
// ABOUTME: First, last, current plus/minus two, with ellipsis gaps

package listctl

// Ellipsis marks a gap between page numbers in a window
const Ellipsis = -1

// maxPlainWindow is the page count below which every page is shown
const maxPlainWindow = 7

// PageWindow returns the page buttons to render for the given position:
// page 1, the last page, and current ± 2, with Ellipsis filling gaps.
// Short lists show every page; a gap of exactly one page renders the
// page itself rather than an ellipsis. Never emits duplicates or
// out-of-range pages; an empty list means no pagination should render
// (zero or one page).
func PageWindow(current, totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	if totalPages <= maxPlainWindow {
		window := make([]int, totalPages)
		for p := 1; p <= totalPages; p++ {
			window[p-1] = p
		}
		return window
	}

	include := func(p int) bool {
		if p == 1 || p == totalPages {
			return true
		}
		return p >= current-2 && p <= current+2
	}

	var window []int
	prev := 0
	for p := 1; p <= totalPages; p++ {
		if !include(p) {
			continue
		}
		switch {
		case prev != 0 && p-prev == 2:
			// A single hidden page reads better as the page itself
			window = append(window, p-1)
		case prev != 0 && p-prev > 2:
			window = append(window, Ellipsis)
		}
		window = append(window, p)
		prev = p
	}
	return window
}
