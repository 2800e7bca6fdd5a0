package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authormodel "bookstore-catalog/internal/domains/author/model"
	bookmodel "bookstore-catalog/internal/domains/book/model"
	metadatamodel "bookstore-catalog/internal/domains/metadata/model"
)

// mockAuthorRepo implements the author repository port for loader tests
type mockAuthorRepo struct {
	mock.Mock
}

func (m *mockAuthorRepo) Create(ctx context.Context, author *authormodel.Author) (*authormodel.Author, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authormodel.Author), args.Error(1)
}

func (m *mockAuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authormodel.Author), args.Error(1)
}

func (m *mockAuthorRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*authormodel.Author, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*authormodel.Author), args.Error(1)
}

func (m *mockAuthorRepo) List(ctx context.Context) ([]*authormodel.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authormodel.Author), args.Error(1)
}

func (m *mockAuthorRepo) Update(ctx context.Context, id uuid.UUID, patch authormodel.Patch) (*authormodel.Author, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authormodel.Author), args.Error(1)
}

// mockBookRepo implements the book repository port for loader tests
type mockBookRepo struct {
	mock.Mock
}

func (m *mockBookRepo) Create(ctx context.Context, book *bookmodel.Book) (*bookmodel.Book, error) {
	args := m.Called(ctx, book)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookmodel.Book), args.Error(1)
}

func (m *mockBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*bookmodel.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookmodel.Book), args.Error(1)
}

func (m *mockBookRepo) List(ctx context.Context, filter bookmodel.Filter) ([]*bookmodel.Book, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*bookmodel.Book), args.Int(1), args.Error(2)
}

func (m *mockBookRepo) ListByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID][]*bookmodel.Book, error) {
	args := m.Called(ctx, authorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID][]*bookmodel.Book), args.Error(1)
}

func (m *mockBookRepo) Update(ctx context.Context, id uuid.UUID, patch bookmodel.Patch) (*bookmodel.Book, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookmodel.Book), args.Error(1)
}

// mockMetadataRepo implements the metadata repository port for loader tests
type mockMetadataRepo struct {
	mock.Mock
}

func (m *mockMetadataRepo) FindByBookID(ctx context.Context, bookID string) (*metadatamodel.BookMetadata, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metadatamodel.BookMetadata), args.Error(1)
}

func (m *mockMetadataRepo) FindByBookIDs(ctx context.Context, bookIDs []string) (map[string]*metadatamodel.BookMetadata, error) {
	args := m.Called(ctx, bookIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*metadatamodel.BookMetadata), args.Error(1)
}

func (m *mockMetadataRepo) Create(ctx context.Context, meta *metadatamodel.BookMetadata) (*metadatamodel.BookMetadata, error) {
	args := m.Called(ctx, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metadatamodel.BookMetadata), args.Error(1)
}

func (m *mockMetadataRepo) Save(ctx context.Context, meta *metadatamodel.BookMetadata) (*metadatamodel.BookMetadata, error) {
	args := m.Called(ctx, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metadatamodel.BookMetadata), args.Error(1)
}

func newTestLoaders() (*Loaders, *mockAuthorRepo, *mockBookRepo, *mockMetadataRepo) {
	authorRepo := new(mockAuthorRepo)
	bookRepo := new(mockBookRepo)
	metadataRepo := new(mockMetadataRepo)
	return NewLoaders(authorRepo, bookRepo, metadataRepo), authorRepo, bookRepo, metadataRepo
}

func TestAuthorByIDLoader_BatchesAndPreservesOrder(t *testing.T) {
	loaders, authorRepo, _, _ := newTestLoaders()

	a := &authormodel.Author{ID: uuid.New(), Name: "Alice Walker"}
	b := &authormodel.Author{ID: uuid.New(), Name: "George Orwell"}
	missing := uuid.New()

	authorRepo.On("GetByIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]*authormodel.Author{a.ID: a, b.ID: b}, nil).
		Once()

	ctx := context.Background()
	thunkB := loaders.AuthorByID.Load(ctx, b.ID.String())
	thunkMissing := loaders.AuthorByID.Load(ctx, missing.String())
	thunkA := loaders.AuthorByID.Load(ctx, a.ID.String())

	gotB, err := thunkB()
	require.NoError(t, err)
	assert.Equal(t, "George Orwell", gotB.Name)

	gotMissing, err := thunkMissing()
	require.NoError(t, err)
	assert.Nil(t, gotMissing)

	gotA, err := thunkA()
	require.NoError(t, err)
	assert.Equal(t, "Alice Walker", gotA.Name)

	// one repository round trip for all three keys
	authorRepo.AssertNumberOfCalls(t, "GetByIDs", 1)
}

// Field resolvers invoke each thunk inline, one field at a time, so a
// distinct key can never share a batch with a later one. The collection
// window must be small enough that serial batches of one stay cheap.
func TestAuthorByIDLoader_SerialInlineLoadsDoNotStall(t *testing.T) {
	loaders, authorRepo, _, _ := newTestLoaders()

	authorRepo.On("GetByIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]*authormodel.Author{}, nil)

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 20; i++ {
		_, err := loaders.AuthorByID.Load(ctx, uuid.NewString())()
		require.NoError(t, err)
	}
	// 20 distinct keys at the default 16ms window would take >300ms
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestAuthorByIDLoader_RepoErrorReachesEveryKey(t *testing.T) {
	loaders, authorRepo, _, _ := newTestLoaders()

	authorRepo.On("GetByIDs", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	ctx := context.Background()
	thunk1 := loaders.AuthorByID.Load(ctx, uuid.NewString())
	thunk2 := loaders.AuthorByID.Load(ctx, uuid.NewString())

	_, err1 := thunk1()
	_, err2 := thunk2()
	assert.Error(t, err1)
	assert.Error(t, err2)
}

func TestBooksByAuthorIDLoader_MissingAuthorGetsEmptySlice(t *testing.T) {
	loaders, _, bookRepo, _ := newTestLoaders()

	authorID := uuid.New()
	prolific := uuid.New()
	books := []*bookmodel.Book{
		{ID: uuid.New(), Title: "1984", AuthorID: prolific},
		{ID: uuid.New(), Title: "Animal Farm", AuthorID: prolific},
	}
	bookRepo.On("ListByAuthorIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID][]*bookmodel.Book{prolific: books}, nil)

	ctx := context.Background()
	thunkEmpty := loaders.BooksByAuthorID.Load(ctx, authorID.String())
	thunkFull := loaders.BooksByAuthorID.Load(ctx, prolific.String())

	gotEmpty, err := thunkEmpty()
	require.NoError(t, err)
	assert.Empty(t, gotEmpty)

	gotFull, err := thunkFull()
	require.NoError(t, err)
	assert.Len(t, gotFull, 2)
}

func TestMetadataByBookIDLoader(t *testing.T) {
	loaders, _, _, metadataRepo := newTestLoaders()

	withMeta := uuid.NewString()
	withoutMeta := uuid.NewString()
	meta := &metadatamodel.BookMetadata{BookID: withMeta, AverageRating: 4.5}
	metadataRepo.On("FindByBookIDs", mock.Anything, mock.Anything).
		Return(map[string]*metadatamodel.BookMetadata{withMeta: meta}, nil)

	ctx := context.Background()
	thunkMeta := loaders.MetadataByBookID.Load(ctx, withMeta)
	thunkNone := loaders.MetadataByBookID.Load(ctx, withoutMeta)

	got, err := thunkMeta()
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.AverageRating)

	none, err := thunkNone()
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestLoadersContextRoundTrip(t *testing.T) {
	loaders, _, _, _ := newTestLoaders()

	ctx := WithLoaders(context.Background(), loaders)
	assert.Same(t, loaders, For(ctx))
	assert.Nil(t, For(context.Background()))
}
