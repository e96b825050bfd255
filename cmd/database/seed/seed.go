package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodies-backend/entities"
)

// The seed files are mongo exports: ids arrive either as plain strings or
// as {"$oid": "..."} documents, dates as {"$date": {"$numberLong": "ms"}}.

type objectID string

func (o *objectID) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*o = objectID(plain)
		return nil
	}
	var wrapped struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*o = objectID(wrapped.OID)
	return nil
}

type mongoDate struct {
	Date struct {
		NumberLong string `json:"$numberLong"`
	} `json:"$date"`
}

func (d mongoDate) Time() *time.Time {
	if d.Date.NumberLong == "" {
		return nil
	}
	ms, err := strconv.ParseInt(d.Date.NumberLong, 10, 64)
	if err != nil {
		return nil
	}
	t := time.UnixMilli(ms)
	return &t
}

type (
	seedUser struct {
		ID     objectID `json:"_id"`
		Name   string   `json:"name"`
		Avatar *string  `json:"avatar"`
		Email  string   `json:"email"`
	}

	seedNamed struct {
		ID   objectID `json:"_id"`
		Name string   `json:"name"`
	}

	seedIngredient struct {
		ID   objectID `json:"_id"`
		Name string   `json:"name"`
		Desc string   `json:"desc"`
		Img  string   `json:"img"`
	}

	seedRecipe struct {
		ID           objectID `json:"_id"`
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Instructions string   `json:"instructions"`
		Thumb        string   `json:"thumb"`
		Time         string   `json:"time"`
		Category     string   `json:"category"`
		Area         string   `json:"area"`
		Owner        objectID `json:"owner"`
		Ingredients  []struct {
			ID      string `json:"id"`
			Measure string `json:"measure"`
		} `json:"ingredients"`
		CreatedAt mongoDate `json:"createdAt"`
		UpdatedAt mongoDate `json:"updatedAt"`
	}

	seedTestimonial struct {
		ID          objectID `json:"_id"`
		Owner       objectID `json:"owner"`
		Testimonial string   `json:"testimonial"`
	}
)

func readJSON(dataDir, name string, out any) error {
	raw, err := os.ReadFile(filepath.Join(dataDir, name))
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// insert bulk-creates rows, skipping ids that are already present so the
// seed can run on every boot.
func insert[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, 200).Error
}

// Run imports the reference data. A failure aborts startup.
func Run(db *gorm.DB, dataDir string) error {
	var usersJSON []seedUser
	var areasJSON, categoriesJSON []seedNamed
	var ingredientsJSON []seedIngredient
	var recipesJSON []seedRecipe
	var testimonialsJSON []seedTestimonial

	if err := readJSON(dataDir, "users.json", &usersJSON); err != nil {
		return err
	}
	if err := readJSON(dataDir, "areas.json", &areasJSON); err != nil {
		return err
	}
	if err := readJSON(dataDir, "categories.json", &categoriesJSON); err != nil {
		return err
	}
	if err := readJSON(dataDir, "ingredients.json", &ingredientsJSON); err != nil {
		return err
	}
	if err := readJSON(dataDir, "recipes.json", &recipesJSON); err != nil {
		return err
	}
	if err := readJSON(dataDir, "testimonials.json", &testimonialsJSON); err != nil {
		return err
	}

	users := make([]entities.User, 0, len(usersJSON))
	for _, u := range usersJSON {
		users = append(users, entities.User{
			ID:     string(u.ID),
			Name:   u.Name,
			Avatar: u.Avatar,
			Email:  u.Email,
		})
	}
	if err := insert(db, users); err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	areas := make([]entities.Area, 0, len(areasJSON))
	for _, a := range areasJSON {
		areas = append(areas, entities.Area{ID: string(a.ID), Name: a.Name})
	}
	if err := insert(db, areas); err != nil {
		return fmt.Errorf("seeding areas: %w", err)
	}

	categories := make([]entities.Category, 0, len(categoriesJSON))
	for _, c := range categoriesJSON {
		categories = append(categories, entities.Category{ID: string(c.ID), Name: c.Name})
	}
	if err := insert(db, categories); err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}

	ingredients := make([]entities.Ingredient, 0, len(ingredientsJSON))
	for _, i := range ingredientsJSON {
		ingredients = append(ingredients, entities.Ingredient{
			ID:          string(i.ID),
			Name:        i.Name,
			Description: i.Desc,
			Image:       i.Img,
		})
	}
	if err := insert(db, ingredients); err != nil {
		return fmt.Errorf("seeding ingredients: %w", err)
	}

	recipes := make([]entities.Recipe, 0, len(recipesJSON))
	for _, r := range recipesJSON {
		refs := make(entities.IngredientRefs, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			refs = append(refs, entities.IngredientRef{ID: ing.ID, Measure: ing.Measure})
		}

		rec := entities.Recipe{
			ID:           string(r.ID),
			Title:        r.Title,
			Description:  r.Description,
			Instructions: r.Instructions,
			Thumb:        r.Thumb,
			Category:     r.Category,
			Area:         r.Area,
			OwnerID:      string(r.Owner),
			Ingredients:  refs,
		}
		if minutes, err := strconv.Atoi(r.Time); err == nil {
			rec.Time = &minutes
		}
		if t := r.CreatedAt.Time(); t != nil {
			rec.CreatedAt = *t
		}
		if t := r.UpdatedAt.Time(); t != nil {
			rec.UpdatedAt = *t
		}
		recipes = append(recipes, rec)
	}
	if err := insert(db, recipes); err != nil {
		return fmt.Errorf("seeding recipes: %w", err)
	}

	testimonials := make([]entities.Testimonial, 0, len(testimonialsJSON))
	for _, t := range testimonialsJSON {
		testimonials = append(testimonials, entities.Testimonial{
			ID:          string(t.ID),
			OwnerID:     string(t.Owner),
			Testimonial: t.Testimonial,
		})
	}
	if err := insert(db, testimonials); err != nil {
		return fmt.Errorf("seeding testimonials: %w", err)
	}

	fmt.Println("Seeding complete")
	return nil
}
