// Package importer seeds reference data from the delimited files the
// project ships with: ingredients.csv, tags.csv and users.csv under
// DATA_DIR. Rows are upserted by natural key, so rerunning the import is
// safe and "already exists" is an update, never an error.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"provender/db"
	"provender/ingredients"
	"provender/models"
	"provender/tags"
	"provender/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// Run imports all three files from dataDir. Missing files are skipped
// with a notice so partial data sets still import.
func Run(ctx context.Context, dataDir string, silent bool) error {
	steps := []struct {
		file   string
		upsert func(context.Context, map[string]string) (string, bool, error)
	}{
		{"ingredients.csv", upsertIngredient},
		{"tags.csv", upsertTag},
		{"users.csv", upsertUser},
	}

	for _, step := range steps {
		path := filepath.Join(dataDir, step.file)
		if _, err := os.Stat(path); err != nil {
			log.Printf("Skipping %s: %v", step.file, err)
			continue
		}
		if err := importFile(ctx, path, step.upsert, silent); err != nil {
			return fmt.Errorf("importing %s: %w", step.file, err)
		}
	}
	return nil
}

func importFile(ctx context.Context, path string, upsert func(context.Context, map[string]string) (string, bool, error), silent bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}

		name, created, err := upsert(ctx, row)
		if err != nil {
			return err
		}
		if created && !silent {
			log.Printf("Created %s", name)
		}
	}
	return nil
}

func upsertIngredient(ctx context.Context, row map[string]string) (string, bool, error) {
	name := ingredients.NormalizeName(row["name"])
	unit := ingredients.NormalizeUnit(row["measurement_unit"])
	if name == "" || unit == "" {
		return "", false, fmt.Errorf("ingredient row with empty name or unit: %v", row)
	}

	res, err := db.IngredientCollection.UpdateOne(ctx,
		bson.M{"name": name, "measurement_unit": unit},
		bson.M{"$setOnInsert": bson.M{"ingredientid": utils.GenerateID("i", 12)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return "", false, err
	}
	return fmt.Sprintf("ingredient %s (%s)", name, unit), res.UpsertedCount > 0, nil
}

func upsertTag(ctx context.Context, row map[string]string) (string, bool, error) {
	tag := models.Tag{
		Name:  strings.ToLower(strings.TrimSpace(row["name"])),
		Color: row["color"],
		Slug:  strings.ToLower(strings.TrimSpace(row["slug"])),
	}
	if tag.Name == "" || tag.Color == "" || tag.Slug == "" {
		return "", false, fmt.Errorf("tag row with empty field: %v", row)
	}
	if !tags.ColorPattern.MatchString(tag.Color) {
		return "", false, fmt.Errorf("invalid tag color %q", tag.Color)
	}
	if !tags.SlugPattern.MatchString(tag.Slug) {
		return "", false, fmt.Errorf("invalid tag slug %q", tag.Slug)
	}

	res, err := db.TagCollection.UpdateOne(ctx,
		bson.M{"slug": tag.Slug},
		bson.M{
			"$set":         bson.M{"name": tag.Name, "color": tag.Color},
			"$setOnInsert": bson.M{"tagid": utils.GenerateID("t", 12)},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return "", false, err
	}
	return "tag " + tag.Slug, res.UpsertedCount > 0, nil
}

func upsertUser(ctx context.Context, row map[string]string) (string, bool, error) {
	username := row["username"]
	if username == "" || row["email"] == "" {
		return "", false, fmt.Errorf("user row with empty username or email: %v", row)
	}

	// Imported users get their username as password; the admin account
	// gets ADMIN_PASSWORD instead.
	password := username
	role := []string{"user"}
	if username == "adam" {
		if p := os.Getenv("ADMIN_PASSWORD"); p != "" {
			password = p
		} else {
			password = "admin"
		}
		role = append(role, "admin")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", false, err
	}

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{
			"$set": bson.M{
				"email":      row["email"],
				"first_name": row["first_name"],
				"last_name":  row["last_name"],
				"password":   string(hashed),
			},
			"$setOnInsert": bson.M{
				"userid":     utils.GenerateID("u", 12),
				"role":       role,
				"created_at": time.Now(),
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return "", false, err
	}
	return "user " + username, res.UpsertedCount > 0, nil
}
