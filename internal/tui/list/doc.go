// Package listview provides a scrolling, selectable list for Bubble Tea models.
//
// VirtualListModel renders only the rows inside its viewport, so views stay
// cheap no matter how long the list is. It handles up/down, j/k, page and
// home/end navigation; the owning model handles every other key.
package listview
