package menu

// DefaultTitle is shown for the main menu and for states that are not menus.
const DefaultTitle = "Linux Ref. Guide"

// Reserved item ids on the main menu and on every submenu.
const (
	IDBasic        = "basic"
	IDIntermediate = "intermediate"
	IDAdvanced     = "advanced"
	IDExit         = "exit"
	IDBack         = "back"
)

// Item represents a selectable menu entry.
type Item struct {
	ID          string
	Label       string
	Description string
}

// RootItems returns the main menu entries.
func RootItems() []Item {
	return []Item{
		{ID: IDBasic, Label: "Basic Topics", Description: "Essential Linux fundamentals"},
		{ID: IDIntermediate, Label: "Intermediate Topics", Description: "System administration skills"},
		{ID: IDAdvanced, Label: "Advanced Topics", Description: "Expert-level Linux mastery"},
		{ID: IDExit, Label: "Exit", Description: "Quit"},
	}
}

// BasicItems returns the basic submenu entries.
func BasicItems() []Item {
	return []Item{
		{ID: "basic-files", Label: "File Commands", Description: "Creating, copying, moving files"},
		{ID: "basic-nav", Label: "Directory Navigation", Description: "Moving through the filesystem"},
		{ID: "basic-view", Label: "File Viewing", Description: "Examining file contents"},
		{ID: "basic-perms", Label: "Permissions", Description: "Understanding Linux security"},
	}
}

// IntermediateItems returns the intermediate submenu entries.
func IntermediateItems() []Item {
	return []Item{
		{ID: "inter-process", Label: "Process Management", Description: "Controlling system processes"},
		{ID: "inter-monitor", Label: "System Monitoring", Description: "Performance analysis tools"},
		{ID: "inter-storage", Label: "Storage & Filesystems", Description: "Advanced disk management"},
		{ID: "inter-shell", Label: "Shell Scripting", Description: "Automation and scripting"},
		{ID: "inter-users", Label: "User Management", Description: "Accounts and permissions"},
		{ID: "inter-packages", Label: "Package Management", Description: "Software installation"},
		{ID: "inter-network", Label: "Network Basics", Description: "Basic networking concepts"},
	}
}

// AdvancedItems returns the advanced submenu entries.
func AdvancedItems() []Item {
	return []Item{
		{ID: "adv-kernel", Label: "Kernel & Modules", Description: "Low-level system management"},
		{ID: "adv-network", Label: "Advanced Networking", Description: "Network configuration & security"},
		{ID: "adv-security", Label: "Security Hardening", Description: "System security & hardening"},
		{ID: "adv-virtual", Label: "Virtualization", Description: "Containers and VMs"},
		{ID: "adv-ha", Label: "High Availability", Description: "Clustering and load balancing"},
		{ID: "adv-internals", Label: "System Internals", Description: "Deep system understanding"},
		{ID: "adv-performance", Label: "Performance Tuning", Description: "Optimization techniques"},
	}
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// IndexOf returns the position of id within items, or -1.
func IndexOf(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
