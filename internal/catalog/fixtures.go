package catalog

// Demo dataset for the TechStore assistant. The records stand in for a real
// order and inventory backend; they never change while the process runs.

var fixtureOrders = []Order{
	{
		ID:                "ORDER-123",
		Status:            "shipped",
		TrackingNumber:    "TRK-789456",
		Carrier:           "FedEx",
		EstimatedDelivery: "2024-01-15",
		ShippedDate:       "2024-01-10",
		Items: []OrderItem{
			{Name: "Wireless Headphones", Quantity: 1, Price: 99.99, SKU: "WH-001"},
		},
		Total: 99.99,
		Customer: Customer{
			Name:  "John Doe",
			Email: "john@example.com",
		},
	},
	{
		ID:             "ORDER-456",
		Status:         "delivered",
		TrackingNumber: "TRK-123456",
		Carrier:        "UPS",
		DeliveredDate:  "2024-01-10",
		DeliveredTime:  "2:30 PM",
		Items: []OrderItem{
			{Name: "Smart Watch", Quantity: 1, Price: 199.99, SKU: "SW-002"},
		},
		Total: 199.99,
		Customer: Customer{
			Name:  "Jane Smith",
			Email: "jane@example.com",
		},
	},
	{
		ID:                "ORDER-789",
		Status:            "processing",
		EstimatedDelivery: "2024-01-18",
		Items: []OrderItem{
			{Name: "Gaming Laptop", Quantity: 1, Price: 1299.99, SKU: "GL-003"},
		},
		Total: 1299.99,
		Customer: Customer{
			Name:  "Bob Johnson",
			Email: "bob@example.com",
		},
	},
}

var fixtureProducts = []Product{
	{
		ID:          "WH-001",
		Name:        "Wireless Headphones",
		Price:       99.99,
		Stock:       25,
		Category:    "Audio",
		Description: "Noise-cancelling wireless headphones with 30hr battery life",
		Features:    []string{"Bluetooth 5.0", "Noise Cancellation", "30hr Battery"},
	},
	{
		ID:          "SW-002",
		Name:        "Smart Watch",
		Price:       199.99,
		Stock:       0,
		Category:    "Wearables",
		Description: "Advanced smartwatch with health monitoring and GPS",
		Features:    []string{"Heart Rate Monitor", "GPS", "Water Resistant"},
		RestockDate: "2024-01-25",
	},
	{
		ID:          "GL-003",
		Name:        "Gaming Laptop",
		Price:       1299.99,
		Stock:       8,
		Category:    "Computers",
		Description: "High-performance gaming laptop with RTX graphics",
		Features:    []string{"RTX 4060", "16GB RAM", "1TB SSD", "144Hz Display"},
	},
	{
		ID:          "SP-004",
		Name:        "Smartphone Pro",
		Price:       899.99,
		Stock:       15,
		Category:    "Phones",
		Description: "Flagship smartphone with advanced camera system",
		Features:    []string{"Triple Camera", "5G", "128GB Storage"},
	},
}

var fixturePolicies = Policies{
	Shipping: ShippingPolicy{
		Standard:      "3-5 business days",
		Express:       "1-2 business days ($9.99)",
		International: "7-14 business days ($24.99)",
		FreeThreshold: 50,
		Carriers:      []string{"FedEx", "UPS", "USPS"},
	},
	Returns: ReturnsPolicy{
		Period:     30,
		Condition:  "Items must be unused and in original packaging with tags",
		Process:    "Initiate return online and print shipping label",
		RefundTime: "5-7 business days",
	},
	Contact: ContactPolicy{
		Email:    "support@yourstore.com",
		Phone:    "1-800-123-4567",
		Hours:    "Monday-Friday 9AM-9PM EST",
		LiveChat: "Available during business hours",
	},
}
