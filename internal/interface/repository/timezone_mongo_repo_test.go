package repository

import (
	"context"
	"testing"

	"worldtime-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func timezoneDoc(tz entity.TimeZone) bson.D {
	return bson.D{
		{Key: "_id", Value: tz.ID},
		{Key: "name", Value: tz.Name},
		{Key: "city", Value: tz.City},
		{Key: "offsetMinutes", Value: tz.OffsetMinutes},
		{Key: "countryCode", Value: tz.CountryCode},
	}
}

func TestSeedMongoTimezones(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	catalog := []entity.TimeZone{
		{ID: "Asia/Jakarta", Name: "Western Indonesia Time", City: "Jakarta", OffsetMinutes: 420, CountryCode: "ID"},
		{ID: "Europe/London", Name: "Greenwich Mean Time", City: "London", OffsetMinutes: 0, CountryCode: "GB"},
	}

	mt.Run("upserts each zone once per seed", func(mt *mtest.T) {
		ctx := context.Background()
		for round := 0; round < 2; round++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
			for range catalog {
				mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
			}
			require.NoError(mt, SeedMongoTimezones(ctx, mt.DB, catalog))

			evt := mt.GetStartedEvent()
			require.NotNil(mt, evt)
			assert.Equal(mt, "createIndexes", evt.CommandName)
			assert.Equal(mt, int64(1), evt.Command.Lookup("indexes", "0", "key", "city").AsInt64())

			for _, tz := range catalog {
				evt := mt.GetStartedEvent()
				require.NotNil(mt, evt)
				assert.Equal(mt, "update", evt.CommandName)
				assert.Equal(mt, tz.ID, evt.Command.Lookup("updates", "0", "q", "_id").StringValue())
				assert.True(mt, evt.Command.Lookup("updates", "0", "upsert").Boolean())
				assert.Equal(mt, tz.City, evt.Command.Lookup("updates", "0", "u", "$setOnInsert", "city").StringValue())
			}
			assert.Nil(mt, mt.GetStartedEvent())
		}
	})

	mt.Run("index failure stops the seed", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))
		err := SeedMongoTimezones(context.Background(), mt.DB, catalog)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "city index")
	})
}

func TestMongoTimezoneRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	jakarta := entity.TimeZone{ID: "Asia/Jakarta", Name: "Western Indonesia Time", City: "Jakarta", OffsetMinutes: 420, CountryCode: "ID"}

	mt.Run("found", func(mt *mtest.T) {
		repo := NewMongoTimezoneRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "worldtime.timezones", mtest.FirstBatch, timezoneDoc(jakarta)))

		tz, err := repo.GetByID(context.Background(), jakarta.ID)
		require.NoError(mt, err)
		assert.Equal(mt, jakarta, *tz)
	})

	mt.Run("unknown zone", func(mt *mtest.T) {
		repo := NewMongoTimezoneRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "worldtime.timezones", mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), "Mars/Olympus_Mons")
		assert.ErrorIs(mt, err, entity.ErrUnknownTimezone)
	})
}

func TestMongoTimezoneRepository_Search(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	stJohns := entity.TimeZone{ID: "America/St_Johns", Name: "Newfoundland Time", City: "St. John's", OffsetMinutes: -210, CountryCode: "CA"}

	mt.Run("quotes the query and applies the limit", func(mt *mtest.T) {
		repo := NewMongoTimezoneRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "worldtime.timezones", mtest.FirstBatch, timezoneDoc(stJohns)))

		got, err := repo.Search(context.Background(), " St. John ", 5)
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, stJohns, got[0])

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, `St\. John`, evt.Command.Lookup("filter", "$or", "0", "city", "$regex").StringValue())
		assert.Equal(mt, "i", evt.Command.Lookup("filter", "$or", "0", "city", "$options").StringValue())
		assert.Equal(mt, "ST. JOHN", evt.Command.Lookup("filter", "$or", "3", "countryCode").StringValue())
		assert.Equal(mt, int64(5), evt.Command.Lookup("limit").AsInt64())
		assert.Equal(mt, int64(1), evt.Command.Lookup("sort", "city").AsInt64())
	})

	mt.Run("empty query uses the default limit", func(mt *mtest.T) {
		repo := NewMongoTimezoneRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "worldtime.timezones", mtest.FirstBatch))

		got, err := repo.Search(context.Background(), "", 0)
		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		_, err = evt.Command.Lookup("filter").Document().LookupErr("$or")
		assert.Error(mt, err)
		assert.Equal(mt, int64(defaultSearchLimit), evt.Command.Lookup("limit").AsInt64())
	})
}

func TestMongoTimezoneRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sorted by offset then city", func(mt *mtest.T) {
		repo := NewMongoTimezoneRepository(mt.DB)
		london := entity.TimeZone{ID: "Europe/London", Name: "Greenwich Mean Time", City: "London", OffsetMinutes: 0, CountryCode: "GB"}
		tokyo := entity.TimeZone{ID: "Asia/Tokyo", Name: "Japan Standard Time", City: "Tokyo", OffsetMinutes: 540, CountryCode: "JP"}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "worldtime.timezones", mtest.FirstBatch, timezoneDoc(london), timezoneDoc(tokyo)))

		got, err := repo.List(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []entity.TimeZone{london, tokyo}, got)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		sortDoc := evt.Command.Lookup("sort").Document()
		keys, err := sortDoc.Elements()
		require.NoError(mt, err)
		require.Len(mt, keys, 2)
		assert.Equal(mt, "offsetMinutes", keys[0].Key())
		assert.Equal(mt, "city", keys[1].Key())
	})
}
