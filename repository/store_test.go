package repository

import (
	"context"
	"testing"

	"github.com/BerniceZTT/crm_core/models"
	"github.com/BerniceZTT/crm_core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestStoreInsertAndGet(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.Customer](db)
	ctx := context.Background()

	customer := models.Customer{Name: "Acme", Email: "sales@acme.test", Phone: "555-0100"}
	require.NoError(t, store.Insert(ctx, &customer))
	assert.NotZero(t, customer.ID, "engine must assign an id")
	assert.False(t, customer.CreatedAt.IsZero(), "engine must assign created_at")

	got, err := store.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.Name, got.Name)
	assert.Equal(t, customer.Email, got.Email)
	assert.Equal(t, customer.Phone, got.Phone)
}

func TestStoreGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.Customer](db)

	_, err := store.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.Ticket](db)

	err := store.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.Campaign](db)
	ctx := context.Background()

	campaign := models.Campaign{Title: "Spring", Description: "spring push"}
	require.NoError(t, store.Insert(ctx, &campaign))

	require.NoError(t, store.Delete(ctx, campaign.ID))

	_, err := store.Get(ctx, campaign.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreSaveReplacesFields(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.Customer](db)
	ctx := context.Background()

	customer := models.Customer{Name: "Acme", Email: "sales@acme.test", Phone: "555-0100"}
	require.NoError(t, store.Insert(ctx, &customer))
	created := customer.CreatedAt

	customer.Name = "Acme Corp"
	customer.Phone = "555-0199"
	require.NoError(t, store.Save(ctx, &customer))

	got, err := store.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, "555-0199", got.Phone)
	assert.Equal(t, created.Unix(), got.CreatedAt.Unix(), "created_at must survive updates")
}

func TestStoreDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.Customer](db)
	ctx := context.Background()

	first := models.Customer{Name: "Acme", Email: "sales@acme.test", Phone: "555-0100"}
	require.NoError(t, store.Insert(ctx, &first))

	second := models.Customer{Name: "Other", Email: "sales@acme.test", Phone: "555-0101"}
	err := store.Insert(ctx, &second)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStoreList(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.Lead](db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		lead := models.Lead{CustomerID: 1, Status: "new", Notes: "cold call"}
		require.NoError(t, store.Insert(ctx, &lead))
	}

	leads, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 5)
}

func TestDeletingCustomerOrphansDependents(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	customers := NewStore[models.Customer](db)
	leads := NewStore[models.Lead](db)
	tickets := NewStore[models.Ticket](db)

	customer := models.Customer{Name: "Acme", Email: "sales@acme.test", Phone: "555-0100"}
	require.NoError(t, customers.Insert(ctx, &customer))

	lead := models.Lead{CustomerID: customer.ID, Status: "new", Notes: "inbound"}
	require.NoError(t, leads.Insert(ctx, &lead))
	ticket := models.Ticket{CustomerID: customer.ID, Issue: "login broken", Status: "open"}
	require.NoError(t, tickets.Insert(ctx, &ticket))

	require.NoError(t, customers.Delete(ctx, customer.ID))

	// no cascade: both rows survive with a dangling customer_id
	gotLead, err := leads.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, gotLead.CustomerID)

	gotTicket, err := tickets.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, gotTicket.CustomerID)
}

func TestFindUserByUsername(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	user := models.User{Username: "alice", PasswordHash: hash, Role: "agent"}
	require.NoError(t, NewStore[models.User](db).Insert(ctx, &user))

	got, err := FindUserByUsername(ctx, db, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.True(t, utils.VerifyPassword("secret", got.PasswordHash))

	_, err = FindUserByUsername(ctx, db, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedAdminUser(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedAdminUser(db))

	admin, err := FindUserByUsername(context.Background(), db, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
	assert.True(t, utils.VerifyPassword("admin123", admin.PasswordHash))

	// idempotent: a second run must not add another account
	require.NoError(t, SeedAdminUser(db))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
