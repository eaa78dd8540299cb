package database

import "github.com/yeremiapane/food-ordering/models"

var seedRestaurants = []models.Restaurant{
	{ID: 1, Name: "Pizza Palace", Cuisine: "Italian", Rating: 4.5, DeliveryTime: "25-35 min", MinOrder: 15, Image: "🍕"},
	{ID: 2, Name: "Burger House", Cuisine: "American", Rating: 4.2, DeliveryTime: "30-40 min", MinOrder: 12, Image: "🍔"},
	{ID: 3, Name: "Sushi World", Cuisine: "Japanese", Rating: 4.8, DeliveryTime: "35-45 min", MinOrder: 20, Image: "🍣"},
	{ID: 4, Name: "Taco Fiesta", Cuisine: "Mexican", Rating: 4.6, DeliveryTime: "20-30 min", MinOrder: 10, Image: "🌮"},
	{ID: 5, Name: "Dragon Wok", Cuisine: "Chinese", Rating: 4.4, DeliveryTime: "30-40 min", MinOrder: 15, Image: "🥡"},
	{ID: 6, Name: "Curry Express", Cuisine: "Indian", Rating: 4.7, DeliveryTime: "35-45 min", MinOrder: 18, Image: "🍛"},
	{ID: 7, Name: "Mediterranean Delight", Cuisine: "Mediterranean", Rating: 4.5, DeliveryTime: "30-40 min", MinOrder: 16, Image: "🥙"},
	{ID: 8, Name: "BBQ Nation", Cuisine: "BBQ", Rating: 4.3, DeliveryTime: "40-50 min", MinOrder: 20, Image: "🍖"},
	{ID: 9, Name: "Pasta Paradise", Cuisine: "Italian", Rating: 4.6, DeliveryTime: "25-35 min", MinOrder: 14, Image: "🍝"},
	{ID: 10, Name: "Healthy Bowls", Cuisine: "Healthy", Rating: 4.8, DeliveryTime: "20-30 min", MinOrder: 12, Image: "🥗"},
	{ID: 11, Name: "Dessert Heaven", Cuisine: "Desserts", Rating: 4.9, DeliveryTime: "15-25 min", MinOrder: 8, Image: "🍰"},
	{ID: 12, Name: "Coffee & Snacks", Cuisine: "Cafe", Rating: 4.4, DeliveryTime: "15-20 min", MinOrder: 5, Image: "☕"},
}

var seedMenuItems = []models.MenuItem{
	{ID: 1, RestaurantID: 1, Name: "Margherita Pizza", Price: 12.99, Category: "Pizza", Description: "Fresh mozzarella, tomatoes, basil"},
	{ID: 2, RestaurantID: 1, Name: "Pepperoni Pizza", Price: 14.99, Category: "Pizza", Description: "Spicy pepperoni, extra cheese"},
	{ID: 3, RestaurantID: 1, Name: "Quattro Formaggi", Price: 15.99, Category: "Pizza", Description: "Four cheese blend"},
	{ID: 4, RestaurantID: 1, Name: "Vegetarian Supreme", Price: 13.99, Category: "Pizza", Description: "Mixed vegetables, olives"},
	{ID: 5, RestaurantID: 1, Name: "Caesar Salad", Price: 8.99, Category: "Salad", Description: "Romaine lettuce, parmesan, croutons"},
	{ID: 6, RestaurantID: 1, Name: "Garlic Bread", Price: 5.99, Category: "Sides", Description: "Crispy garlic butter bread"},

	{ID: 7, RestaurantID: 2, Name: "Classic Burger", Price: 10.99, Category: "Burger", Description: "Beef patty, lettuce, tomato"},
	{ID: 8, RestaurantID: 2, Name: "Cheese Burger", Price: 11.99, Category: "Burger", Description: "Double cheese, special sauce"},
	{ID: 9, RestaurantID: 2, Name: "Bacon Burger", Price: 13.99, Category: "Burger", Description: "Crispy bacon, BBQ sauce"},
	{ID: 10, RestaurantID: 2, Name: "Veggie Burger", Price: 9.99, Category: "Burger", Description: "Plant-based patty"},
	{ID: 11, RestaurantID: 2, Name: "Fries", Price: 4.99, Category: "Sides", Description: "Crispy golden fries"},
	{ID: 12, RestaurantID: 2, Name: "Onion Rings", Price: 5.99, Category: "Sides", Description: "Crispy battered onion rings"},
	{ID: 13, RestaurantID: 2, Name: "Milkshake", Price: 6.99, Category: "Drinks", Description: "Vanilla, chocolate, or strawberry"},

	{ID: 14, RestaurantID: 3, Name: "California Roll", Price: 9.99, Category: "Roll", Description: "Crab, avocado, cucumber"},
	{ID: 15, RestaurantID: 3, Name: "Spicy Tuna Roll", Price: 11.99, Category: "Roll", Description: "Tuna, spicy mayo"},
	{ID: 16, RestaurantID: 3, Name: "Dragon Roll", Price: 14.99, Category: "Roll", Description: "Eel, avocado, special sauce"},
	{ID: 17, RestaurantID: 3, Name: "Salmon Sashimi", Price: 15.99, Category: "Sashimi", Description: "Fresh salmon slices"},
	{ID: 18, RestaurantID: 3, Name: "Tuna Sashimi", Price: 16.99, Category: "Sashimi", Description: "Premium tuna slices"},
	{ID: 19, RestaurantID: 3, Name: "Miso Soup", Price: 3.99, Category: "Soup", Description: "Traditional Japanese soup"},
	{ID: 20, RestaurantID: 3, Name: "Edamame", Price: 4.99, Category: "Appetizer", Description: "Steamed soybeans"},

	{ID: 21, RestaurantID: 4, Name: "Beef Tacos", Price: 9.99, Category: "Tacos", Description: "3 tacos with seasoned beef"},
	{ID: 22, RestaurantID: 4, Name: "Chicken Tacos", Price: 9.49, Category: "Tacos", Description: "3 tacos with grilled chicken"},
	{ID: 23, RestaurantID: 4, Name: "Fish Tacos", Price: 10.99, Category: "Tacos", Description: "3 tacos with crispy fish"},
	{ID: 24, RestaurantID: 4, Name: "Burrito Bowl", Price: 11.99, Category: "Bowls", Description: "Rice, beans, meat, toppings"},
	{ID: 25, RestaurantID: 4, Name: "Quesadilla", Price: 8.99, Category: "Appetizer", Description: "Cheese, chicken, peppers"},
	{ID: 26, RestaurantID: 4, Name: "Nachos Supreme", Price: 10.99, Category: "Appetizer", Description: "Loaded with cheese, jalapeños"},
	{ID: 27, RestaurantID: 4, Name: "Churros", Price: 5.99, Category: "Dessert", Description: "Cinnamon sugar churros"},

	{ID: 28, RestaurantID: 5, Name: "Kung Pao Chicken", Price: 12.99, Category: "Main", Description: "Spicy chicken with peanuts"},
	{ID: 29, RestaurantID: 5, Name: "Sweet & Sour Pork", Price: 11.99, Category: "Main", Description: "Crispy pork in sweet sauce"},
	{ID: 30, RestaurantID: 5, Name: "Beef with Broccoli", Price: 13.99, Category: "Main", Description: "Tender beef, fresh broccoli"},
	{ID: 31, RestaurantID: 5, Name: "Fried Rice", Price: 8.99, Category: "Rice", Description: "Egg fried rice with vegetables"},
	{ID: 32, RestaurantID: 5, Name: "Chow Mein", Price: 9.99, Category: "Noodles", Description: "Stir-fried noodles"},
	{ID: 33, RestaurantID: 5, Name: "Spring Rolls", Price: 5.99, Category: "Appetizer", Description: "4 crispy vegetable rolls"},
	{ID: 34, RestaurantID: 5, Name: "Wonton Soup", Price: 6.99, Category: "Soup", Description: "Pork wontons in broth"},

	{ID: 35, RestaurantID: 6, Name: "Chicken Tikka Masala", Price: 14.99, Category: "Main", Description: "Creamy tomato curry"},
	{ID: 36, RestaurantID: 6, Name: "Butter Chicken", Price: 14.99, Category: "Main", Description: "Rich butter sauce"},
	{ID: 37, RestaurantID: 6, Name: "Lamb Biryani", Price: 16.99, Category: "Rice", Description: "Aromatic rice with lamb"},
	{ID: 38, RestaurantID: 6, Name: "Palak Paneer", Price: 12.99, Category: "Vegetarian", Description: "Spinach and cottage cheese"},
	{ID: 39, RestaurantID: 6, Name: "Garlic Naan", Price: 3.99, Category: "Bread", Description: "Soft garlic flatbread"},
	{ID: 40, RestaurantID: 6, Name: "Samosas", Price: 6.99, Category: "Appetizer", Description: "3 crispy pastries"},
	{ID: 41, RestaurantID: 6, Name: "Mango Lassi", Price: 4.99, Category: "Drinks", Description: "Sweet yogurt drink"},

	{ID: 42, RestaurantID: 7, Name: "Falafel Wrap", Price: 9.99, Category: "Wrap", Description: "Chickpea fritters, tahini"},
	{ID: 43, RestaurantID: 7, Name: "Shawarma Plate", Price: 13.99, Category: "Main", Description: "Chicken or beef shawarma"},
	{ID: 44, RestaurantID: 7, Name: "Greek Salad", Price: 8.99, Category: "Salad", Description: "Feta, olives, cucumber"},
	{ID: 45, RestaurantID: 7, Name: "Hummus & Pita", Price: 7.99, Category: "Appetizer", Description: "Creamy hummus, warm pita"},
	{ID: 46, RestaurantID: 7, Name: "Lamb Kebab", Price: 15.99, Category: "Main", Description: "Grilled lamb skewers"},
	{ID: 47, RestaurantID: 7, Name: "Baklava", Price: 5.99, Category: "Dessert", Description: "Sweet pastry with nuts"},

	{ID: 48, RestaurantID: 8, Name: "BBQ Ribs", Price: 18.99, Category: "Main", Description: "Full rack, smoky BBQ sauce"},
	{ID: 49, RestaurantID: 8, Name: "Pulled Pork Sandwich", Price: 11.99, Category: "Sandwich", Description: "Slow-cooked pulled pork"},
	{ID: 50, RestaurantID: 8, Name: "Brisket Plate", Price: 16.99, Category: "Main", Description: "Smoked beef brisket"},
	{ID: 51, RestaurantID: 8, Name: "BBQ Wings", Price: 10.99, Category: "Appetizer", Description: "10 pieces, tangy sauce"},
	{ID: 52, RestaurantID: 8, Name: "Coleslaw", Price: 3.99, Category: "Sides", Description: "Creamy cabbage salad"},
	{ID: 53, RestaurantID: 8, Name: "Cornbread", Price: 4.99, Category: "Sides", Description: "Sweet cornbread"},

	{ID: 54, RestaurantID: 9, Name: "Fettuccine Alfredo", Price: 13.99, Category: "Pasta", Description: "Creamy parmesan sauce"},
	{ID: 55, RestaurantID: 9, Name: "Spaghetti Carbonara", Price: 14.99, Category: "Pasta", Description: "Bacon, eggs, parmesan"},
	{ID: 56, RestaurantID: 9, Name: "Penne Arrabiata", Price: 12.99, Category: "Pasta", Description: "Spicy tomato sauce"},
	{ID: 57, RestaurantID: 9, Name: "Lasagna", Price: 15.99, Category: "Pasta", Description: "Layers of pasta, meat, cheese"},
	{ID: 58, RestaurantID: 9, Name: "Ravioli", Price: 13.99, Category: "Pasta", Description: "Cheese-filled pasta"},
	{ID: 59, RestaurantID: 9, Name: "Tiramisu", Price: 6.99, Category: "Dessert", Description: "Classic Italian dessert"},

	{ID: 60, RestaurantID: 10, Name: "Protein Power Bowl", Price: 11.99, Category: "Bowl", Description: "Chicken, quinoa, vegetables"},
	{ID: 61, RestaurantID: 10, Name: "Vegan Buddha Bowl", Price: 10.99, Category: "Bowl", Description: "Plant-based protein bowl"},
	{ID: 62, RestaurantID: 10, Name: "Acai Bowl", Price: 9.99, Category: "Bowl", Description: "Acai, granola, fresh fruits"},
	{ID: 63, RestaurantID: 10, Name: "Greek Yogurt Parfait", Price: 7.99, Category: "Breakfast", Description: "Yogurt, berries, honey"},
	{ID: 64, RestaurantID: 10, Name: "Green Smoothie", Price: 6.99, Category: "Drinks", Description: "Spinach, banana, mango"},
	{ID: 65, RestaurantID: 10, Name: "Protein Shake", Price: 7.99, Category: "Drinks", Description: "Whey protein, fruits"},

	{ID: 66, RestaurantID: 11, Name: "Chocolate Cake", Price: 6.99, Category: "Cake", Description: "Rich chocolate layers"},
	{ID: 67, RestaurantID: 11, Name: "Cheesecake", Price: 7.99, Category: "Cake", Description: "New York style cheesecake"},
	{ID: 68, RestaurantID: 11, Name: "Red Velvet Cupcake", Price: 4.99, Category: "Cupcake", Description: "Cream cheese frosting"},
	{ID: 69, RestaurantID: 11, Name: "Brownie Sundae", Price: 8.99, Category: "Ice Cream", Description: "Warm brownie, ice cream"},
	{ID: 70, RestaurantID: 11, Name: "Macarons", Price: 9.99, Category: "Pastry", Description: "6 assorted flavors"},
	{ID: 71, RestaurantID: 11, Name: "Apple Pie", Price: 6.99, Category: "Pie", Description: "Classic homemade pie"},

	{ID: 72, RestaurantID: 12, Name: "Espresso", Price: 3.99, Category: "Coffee", Description: "Strong Italian coffee"},
	{ID: 73, RestaurantID: 12, Name: "Cappuccino", Price: 4.99, Category: "Coffee", Description: "Espresso with foam"},
	{ID: 74, RestaurantID: 12, Name: "Latte", Price: 4.99, Category: "Coffee", Description: "Smooth espresso milk"},
	{ID: 75, RestaurantID: 12, Name: "Croissant", Price: 3.99, Category: "Pastry", Description: "Buttery French pastry"},
	{ID: 76, RestaurantID: 12, Name: "Bagel & Cream Cheese", Price: 5.99, Category: "Breakfast", Description: "Fresh bagel"},
	{ID: 77, RestaurantID: 12, Name: "Muffin", Price: 3.99, Category: "Pastry", Description: "Blueberry or chocolate chip"},
}

type seedUser struct {
	Username string
	Email    string
	Password string
}

// testUsers are development accounts, only created when SEED_TEST_USERS is set.
var testUsers = []seedUser{
	{Username: "testuser", Email: "test@example.com", Password: "password123"},
	{Username: "john_doe", Email: "john@example.com", Password: "john1234"},
	{Username: "foodlover", Email: "foodlover@example.com", Password: "foodie2024"},
}
