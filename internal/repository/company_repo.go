package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Werneck0live/empresa-api/internal/models"
)

var (
	ErrDuplicateCNPJ = errors.New("cnpj already exists")
	ErrNotFound      = errors.New("company not found")
)

type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection("companies")}
}

func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "cnpj", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_cnpj"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}
	// Se já existir com outra opção, tenta dropar e recriar
	if ce, ok := err.(mongo.CommandError); ok && ce.Code == 85 { // IndexOptionsConflict
		if _, dropErr := r.coll.Indexes().DropOne(ctx, "uniq_cnpj"); dropErr != nil {
			return fmt.Errorf("drop index uniq_cnpj: %w", dropErr)
		}
		_, createErr := r.coll.Indexes().CreateOne(ctx, model)
		return createErr
	}
	return err
}

// Create atribui id (UUID) e timestamps; o índice uniq_cnpj é o backstop
// contra corrida entre a checagem do service e a escrita.
func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) (*models.Company, error) {
	c.ID = uuid.NewString()
	// BSON guarda datetime em milissegundos; truncar evita divergência
	// entre o que devolvemos e o que foi persistido
	c.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	c.UpdatedAt = c.CreatedAt
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateCNPJ
		}
		return nil, err
	}
	return c, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []models.Company{}
	for cur.Next(ctx) {
		var c models.Company
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, cur.Err()
}

// FindByID devolve (nil, nil) quando não existe; ausência não é erro aqui.
func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*models.Company, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CompanyRepository) FindByCNPJ(ctx context.Context, cnpj string) (*models.Company, error) {
	return r.findOne(ctx, bson.M{"cnpj": cnpj})
}

func (r *CompanyRepository) findOne(ctx context.Context, filter bson.M) (*models.Company, error) {
	var c models.Company
	err := r.coll.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Update sobrescreve todos os campos mutáveis com os valores da entidade
// recebida e renova updated_at; id e created_at ficam intactos.
func (r *CompanyRepository) Update(ctx context.Context, id string, c *models.Company) (*models.Company, error) {
	c.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	set := bson.M{
		"name":       c.Name,
		"cnpj":       c.CNPJ,
		"email":      c.Email,
		"phone":      c.Phone,
		"address":    c.Address,
		"updated_at": c.UpdatedAt,
	}

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateCNPJ
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func isDuplicateKey(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
