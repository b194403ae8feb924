package main

import (
	"fmt"
	"log"

	"github.com/asaidimu/go-sieve/core/filter"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// User is a plain record filtered through typed field accessors.
type User struct {
	ID       string
	Name     string
	Email    *string
	Age      float64
	Rating   *float64
	IsActive bool
}

var userFields = filter.FieldTable[User]{
	"id":     filter.IdField(func(u User) string { return u.ID }),
	"name":   filter.StringField(func(u User) string { return u.Name }),
	"email":  filter.StringNullableField(func(u User) *string { return u.Email }),
	"age":    filter.NumberField(func(u User) float64 { return u.Age }),
	"rating": filter.NumberNullableField(func(u User) *float64 { return u.Rating }),
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	users := []User{
		{ID: uuid.New().String(), Name: "Alice", Email: filter.Ptr("alice@example.com"), Age: 20, Rating: filter.Ptr(4.5), IsActive: true},
		{ID: uuid.New().String(), Name: "Alan", Age: 16, IsActive: true},
		{ID: uuid.New().String(), Name: "Bob", Email: filter.Ptr("bob@example.org"), Age: 34, Rating: filter.Ptr(3.0)},
	}

	definition := filter.NewEntityFilterDefinition(userFields, logger)

	// "is_active" has no declared field, so its rule is ignored.
	adults, err := definition.Filter(filter.Rules{
		"age":       filter.NumberFilter{Gte: filter.Ptr(18.0)},
		"name":      filter.StringFilter{StartsWith: filter.Ptr("A")},
		"is_active": filter.StringFilter{Equals: filter.Ptr("true")},
	})
	if err != nil {
		logger.Fatal("Failed to build adult filter", zap.Error(err))
	}

	for _, u := range filter.Filter(users, adults) {
		fmt.Printf("adult A-name: %s (%s)\n", u.Name, u.ID)
	}

	withoutEmail, err := definition.Filter(filter.Rules{
		"email": filter.StringNullableFilter{Equals: filter.Null[string]()},
	})
	if err != nil {
		logger.Fatal("Failed to build email filter", zap.Error(err))
	}

	for _, u := range filter.Filter(users, withoutEmail) {
		fmt.Printf("no email: %s\n", u.Name)
	}

	notExampleCom, err := definition.Filter(filter.Rules{
		"email":  filter.StringNullableFilter{Not: &filter.StringNullableFilter{EndsWith: filter.Ptr("@example.com")}},
		"rating": filter.NumberNullableFilter{Not: &filter.NumberNullableFilter{Equals: filter.Null[float64]()}},
	})
	if err != nil {
		logger.Fatal("Failed to build domain filter", zap.Error(err))
	}

	for _, u := range filter.Filter(users, notExampleCom) {
		fmt.Printf("rated, not @example.com: %s\n", u.Name)
	}
}
