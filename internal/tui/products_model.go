package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecodash/internal/catalog"
	"github.com/rshade/ecodash/internal/presentation"
	"github.com/rshade/ecodash/internal/query"
	listview "github.com/rshade/ecodash/internal/tui/list"
)

const (
	// productHeaderHeight is the height reserved above the list.
	productHeaderHeight = 8

	// Column widths for product rows.
	prodColWidthName     = 30
	prodColWidthCategory = 16
	prodColWidthPrice    = 8
	prodColWidthRating   = 14
	prodColWidthEco      = 5
)

// renderProduct formats one product row.
func renderProduct(p catalog.Product, selected bool) string {
	row := fmt.Sprintf("%-*s  %-*s  %*s  %-*s  ",
		prodColWidthName, truncate(p.Name, prodColWidthName),
		prodColWidthCategory, p.Category.DisplayName(),
		prodColWidthPrice, fmt.Sprintf("$%.2f", p.Price),
		prodColWidthRating, fmt.Sprintf("%s %.1f (%d)", IconStar, p.Rating, p.Reviews),
	)
	eco := fmt.Sprintf("%*.1f", prodColWidthEco, p.EcoScore)

	if selected {
		return SelectedStyle.Render(row + eco)
	}
	return row + presentation.EcoScoreStyle(p.EcoScore).Lipgloss().Render(eco)
}

// ProductsViewModel is the Bubble Tea model for browsing the marketplace.
// The category, search text and sort mode are re-applied to the full
// catalog on every change.
type ProductsViewModel struct {
	state    ViewState
	all      []catalog.Product
	products []catalog.Product

	params     query.Params
	categories []string

	virtualList *listview.VirtualListModel[catalog.Product]
	textInput   textinput.Model
	showFilter  bool

	cartCount int

	width  int
	height int
}

// NewProductsViewModel creates a browser over products with initial list controls.
func NewProductsViewModel(products []catalog.Product, params query.Params) *ProductsViewModel {
	categories := []string{query.CategoryAll}
	for _, c := range catalog.ProductCategories() {
		categories = append(categories, string(c))
	}
	if params.Category == "" {
		params.Category = query.CategoryAll
	}
	params.Sort = query.ParseSortMode(string(params.Sort))

	m := &ProductsViewModel{
		state:      ViewStateList,
		all:        products,
		params:     params,
		categories: categories,
		textInput:  newSearchInput(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.textInput.SetValue(params.Search)
	m.refresh()
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search products..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Init initializes the model.
func (m *ProductsViewModel) Init() tea.Cmd {
	if m.showFilter {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *ProductsViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildList()
		return m, nil
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	default:
		return m, nil
	}
}

// handleFilterInput searches as the user types.
func (m *ProductsViewModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			return m, nil
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != m.params.Search {
		m.params.Search = m.textInput.Value()
		m.refresh()
	}
	return m, cmd
}

func (m *ProductsViewModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEnter:
			if len(m.products) > 0 {
				m.state = ViewStateDetail
			}
			return m, nil
		case keySlash:
			m.showFilter = true
			return m, m.textInput.Focus()
		case keyS:
			m.params.Sort = m.params.Sort.Next()
			m.refresh()
			return m, nil
		case keyC:
			m.cycleCategory()
			return m, nil
		case keyA:
			m.addToCart()
			return m, nil
		case keyEsc:
			if m.params.Search != "" {
				m.textInput.SetValue("")
				m.params.Search = ""
				m.refresh()
			}
			return m, nil
		}
	}

	if m.virtualList != nil {
		updated, cmd := m.virtualList.Update(msg)
		if vl, ok := updated.(*listview.VirtualListModel[catalog.Product]); ok {
			m.virtualList = vl
		}
		return m, cmd
	}
	return m, nil
}

func (m *ProductsViewModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc:
			m.state = ViewStateList
		case keyA:
			m.addToCart()
		}
	}
	return m, nil
}

// addToCart counts the selected product. The count is session state only.
func (m *ProductsViewModel) addToCart() {
	if m.SelectedProduct() != nil {
		m.cartCount++
	}
}

func (m *ProductsViewModel) cycleCategory() {
	next := 0
	for i, c := range m.categories {
		if c == m.params.Category {
			next = (i + 1) % len(m.categories)
			break
		}
	}
	m.params.Category = m.categories[next]
	m.refresh()
}

// refresh recomputes the visible products from the full catalog.
func (m *ProductsViewModel) refresh() {
	m.products = query.Products(m.all, m.params)
	if m.virtualList == nil {
		m.rebuildList()
		return
	}
	m.virtualList.SetItems(m.products)
	m.virtualList.SetSelected(0)
}

func (m *ProductsViewModel) rebuildList() {
	selected := 0
	if m.virtualList != nil {
		selected = m.virtualList.Selected()
	}
	m.virtualList = listview.NewVirtualListModel(
		m.products,
		max(m.height-productHeaderHeight, minHeight),
		m.width,
		renderProduct,
	)
	m.virtualList.SetSelected(selected)
}

// Products returns the products currently listed.
func (m *ProductsViewModel) Products() []catalog.Product {
	return m.products
}

// Params returns the current list controls.
func (m *ProductsViewModel) Params() query.Params {
	return m.params
}

// CartCount returns the number of items added this session.
func (m *ProductsViewModel) CartCount() int {
	return m.cartCount
}

// SelectedProduct returns the product under the cursor, or nil.
func (m *ProductsViewModel) SelectedProduct() *catalog.Product {
	if m.virtualList == nil {
		return nil
	}
	return m.virtualList.GetSelectedItem()
}

// View renders the current view.
func (m *ProductsViewModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		if p := m.SelectedProduct(); p != nil {
			return RenderProductDetail(*p, m.cartCount)
		}
		return ErrNothingSelected.Error()
	default:
		return m.renderListView()
	}
}

func (m *ProductsViewModel) renderListView() string {
	title := TitleStyle.Render(IconLeaf + " Eco Marketplace")
	cart := ValueStyle.Render(fmt.Sprintf("  %s %d", IconCart, m.cartCount))

	category := "All Products"
	if m.params.Category != query.CategoryAll {
		category = catalog.ParseProductCategory(m.params.Category).DisplayName()
	}
	controls := LabelStyle.Render("Category: ") + ValueStyle.Render(category) +
		LabelStyle.Render("   Sort: ") + ValueStyle.Render(m.params.Sort.Label())
	if m.params.Search != "" {
		controls += LabelStyle.Render("   Search: ") + ValueStyle.Render(m.params.Search)
	}

	header := fmt.Sprintf("%-*s  %-*s  %*s  %-*s  %*s",
		prodColWidthName, "Product",
		prodColWidthCategory, "Category",
		prodColWidthPrice, "Price",
		prodColWidthRating, "Rating",
		prodColWidthEco, "Eco",
	)

	var body string
	if len(m.products) == 0 {
		body = SubtleStyle.Render("No products found matching your criteria")
	} else {
		body = ColumnHeaderStyle.Render(header) + "\n" + m.virtualList.View()
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, title, cart),
		controls,
		"",
		body,
	}
	if m.showFilter {
		parts = append(parts, "\nSearch: "+m.textInput.View())
	}
	parts = append(parts, HelpStyle.Render(
		"\n[/] Search  [c] Category  [s] Sort  [a] Add to cart  [↑↓/jk] Navigate  [Enter] Details  [q] Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderProductDetail renders one product with its badges.
func RenderProductDetail(p catalog.Product, cartCount int) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render(p.Name))
	sb.WriteString("\n\n")
	sb.WriteString(p.Description)
	sb.WriteString("\n\n")
	writeDetailLine(&sb, "Category", p.Category.DisplayName())
	writeDetailLine(&sb, "Price", fmt.Sprintf("$%.2f", p.Price))
	writeDetailLine(&sb, "Rating", fmt.Sprintf("%s %.1f from %d reviews", IconStar, p.Rating, p.Reviews))

	eco := presentation.EcoScoreStyle(p.EcoScore)
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-10s", "Eco-Score")))
	sb.WriteString(eco.Lipgloss().Render(fmt.Sprintf("%.1f/10", p.EcoScore)))
	sb.WriteString("\n")

	if len(p.Badges) > 0 {
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-10s", "Badges")))
		badge := presentation.Emerald500.Style()
		for i, b := range p.Badges {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(badge.Render("[" + b + "]"))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render(fmt.Sprintf("[a] Add to cart (%s %d)  [Esc] Back to list  [q] Quit", IconCart, cartCount)))
	return sb.String()
}

func writeDetailLine(sb *strings.Builder, label, value string) {
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-10s", label)))
	sb.WriteString(ValueStyle.Render(value))
	sb.WriteString("\n")
}
