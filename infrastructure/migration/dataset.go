package migration

import (
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
	"github.com/vfg2006/dish-ranking-api/pkg/utils"
)

type demoRestaurant struct {
	name   string
	city   string
	dishes []demoDish
	// quantidade de pedidos distribuída entre os pratos de biryani do restaurante
	biryaniOrders int
}

type demoDish struct {
	name  string
	price int64
}

var demoRestaurants = []demoRestaurant{
	{name: "Hyderabadi Spice House", city: "Hyderabad", biryaniOrders: 96, dishes: []demoDish{
		{"Chicken Biryani", 220}, {"Mutton Biryani", 280}, {"Veg Biryani", 180}, {"Butter Chicken", 250},
	}},
	{name: "Delhi Darbar", city: "Delhi", biryaniOrders: 65, dishes: []demoDish{
		{"Chicken Biryani", 200}, {"Paneer Biryani", 190}, {"Dal Makhani", 150},
	}},
	{name: "Mumbai Masala", city: "Mumbai", biryaniOrders: 85, dishes: []demoDish{
		{"Chicken Biryani", 240}, {"Prawn Biryani", 300}, {"Fish Curry", 220},
	}},
	{name: "Bengaluru Biryani", city: "Bengaluru", biryaniOrders: 78, dishes: []demoDish{
		{"Chicken Biryani", 210}, {"Egg Biryani", 170}, {"Chicken Biryani", 230},
	}},
	{name: "Chennai Curry House", city: "Chennai", biryaniOrders: 38, dishes: []demoDish{
		{"Chicken Biryani", 195}, {"Dosa", 80},
	}},
	{name: "Pune Palace", city: "Pune", biryaniOrders: 72, dishes: []demoDish{
		{"Chicken Biryani", 225}, {"Chicken Biryani", 250},
	}},
	{name: "Kolkata Kitchen", city: "Kolkata", biryaniOrders: 58, dishes: []demoDish{
		{"Chicken Biryani", 205}, {"Fish Biryani", 260},
	}},
	{name: "Ahmedabad Aroma", city: "Ahmedabad", biryaniOrders: 32, dishes: []demoDish{
		{"Chicken Biryani", 190}, {"Gujarati Thali", 200},
	}},
	{name: "Jaipur Junction", city: "Jaipur", biryaniOrders: 48, dishes: []demoDish{
		{"Chicken Biryani", 215}, {"Rajasthani Thali", 180},
	}},
	{name: "Lucknow Legacy", city: "Lucknow", biryaniOrders: 68, dishes: []demoDish{
		{"Chicken Biryani", 245}, {"Awadhi Biryani", 280},
	}},
	{name: "Goa Grill", city: "Goa", biryaniOrders: 52, dishes: []demoDish{
		{"Chicken Biryani", 235}, {"Goan Fish Curry", 240},
	}},
	{name: "Kerala Kitchen", city: "Kochi", biryaniOrders: 45, dishes: []demoDish{
		{"Chicken Biryani", 200}, {"Kerala Parotta", 120},
	}},
}

// otherDishOrders é a quantidade de pedidos espalhados entre os pratos que não são biryani
const otherDishOrders = 50

// orderWindow é o período para trás em que os pedidos de demonstração são criados
const orderWindow = 90 * 24 * time.Hour

// DemoDataset gera o dataset de demonstração. Com o mesmo rng o resultado tem as mesmas contagens.
func DemoDataset(rng *rand.Rand, now time.Time) (domain.Dataset, error) {
	dataset := domain.Dataset{}

	biryaniByRestaurant := make(map[string][]domain.MenuItem)
	others := make([]domain.MenuItem, 0)

	for _, demo := range demoRestaurants {
		restaurantID, err := utils.GenerateID()
		if err != nil {
			return domain.Dataset{}, err
		}

		dataset.Restaurants = append(dataset.Restaurants, domain.Restaurant{
			ID:        restaurantID,
			Name:      demo.name,
			City:      demo.city,
			CreatedAt: now,
			UpdatedAt: now,
		})

		for _, dish := range demo.dishes {
			itemID, err := utils.GenerateID()
			if err != nil {
				return domain.Dataset{}, err
			}

			item := domain.MenuItem{
				ID:           itemID,
				RestaurantID: restaurantID,
				Name:         dish.name,
				Price:        decimal.NewFromInt(dish.price),
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			dataset.MenuItems = append(dataset.MenuItems, item)

			if strings.Contains(strings.ToLower(dish.name), "biryani") {
				biryaniByRestaurant[restaurantID] = append(biryaniByRestaurant[restaurantID], item)
			} else {
				others = append(others, item)
			}
		}
	}

	for i, demo := range demoRestaurants {
		items := biryaniByRestaurant[dataset.Restaurants[i].ID]
		if len(items) == 0 {
			continue
		}

		for n := 0; n < demo.biryaniOrders; n++ {
			order, err := newDemoOrder(rng, now, items[rng.Intn(len(items))])
			if err != nil {
				return domain.Dataset{}, err
			}
			dataset.Orders = append(dataset.Orders, order)
		}
	}

	for n := 0; n < otherDishOrders && len(others) > 0; n++ {
		order, err := newDemoOrder(rng, now, others[rng.Intn(len(others))])
		if err != nil {
			return domain.Dataset{}, err
		}
		dataset.Orders = append(dataset.Orders, order)
	}

	return dataset, nil
}

func newDemoOrder(rng *rand.Rand, now time.Time, item domain.MenuItem) (domain.Order, error) {
	orderID, err := utils.GenerateID()
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID:           orderID,
		RestaurantID: item.RestaurantID,
		MenuItemID:   item.ID,
		CreatedAt:    now.Add(-time.Duration(rng.Int63n(int64(orderWindow)))),
	}, nil
}
