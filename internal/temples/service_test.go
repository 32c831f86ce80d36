package temples

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	temples map[uint]*Temple
	nextID  uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		temples: make(map[uint]*Temple),
		nextID:  1,
	}
}

func (f *fakeRepository) Create(_ context.Context, temple *Temple) error {
	temple.ID = f.nextID
	f.nextID++
	stored := *temple
	f.temples[temple.ID] = &stored
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uint) (*Temple, error) {
	t, ok := f.temples[id]
	if !ok {
		return nil, ErrTempleNotFound
	}
	out := *t
	return &out, nil
}

func (f *fakeRepository) GetByName(_ context.Context, name string) (*Temple, error) {
	for _, t := range f.temples {
		if t.Name == name {
			out := *t
			return &out, nil
		}
	}
	return nil, ErrTempleNotFound
}

func (f *fakeRepository) GetAll(_ context.Context) ([]Temple, error) {
	var out []Temple
	for _, t := range f.temples {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeRepository) Update(_ context.Context, id uint, updates map[string]interface{}) error {
	t, ok := f.temples[id]
	if !ok {
		return ErrTempleNotFound
	}
	if v, ok := updates["name"]; ok {
		t.Name = v.(string)
	}
	if v, ok := updates["location"]; ok {
		t.Location = v.(string)
	}
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uint) error {
	if _, ok := f.temples[id]; !ok {
		return ErrTempleNotFound
	}
	delete(f.temples, id)
	return nil
}

func TestCreateTemple(t *testing.T) {
	svc := NewService(newFakeRepository())

	temple, err := svc.Create(context.Background(), CreateTempleRequest{
		Name:     "Shri Siddhivinayak Temple",
		Location: "Mumbai",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), temple.ID)
	assert.Equal(t, "Shri Siddhivinayak Temple", temple.Name)
}

func TestCreateTemple_DuplicateName(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Create(context.Background(), CreateTempleRequest{Name: "Kashi Vishwanath", Location: "Varanasi"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateTempleRequest{Name: "Kashi Vishwanath", Location: "Elsewhere"})
	assert.ErrorIs(t, err, ErrTempleAlreadyExists)
}

func TestUpdateTemple_NameConflict(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Create(context.Background(), CreateTempleRequest{Name: "Temple A", Location: "A"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), CreateTempleRequest{Name: "Temple B", Location: "B"})
	require.NoError(t, err)

	conflicting := "Temple A"
	_, err = svc.Update(context.Background(), second.ID, UpdateTempleRequest{Name: &conflicting})
	assert.ErrorIs(t, err, ErrTempleAlreadyExists)
}

func TestUpdateTemple_PartialPatch(t *testing.T) {
	svc := NewService(newFakeRepository())

	temple, err := svc.Create(context.Background(), CreateTempleRequest{Name: "Temple A", Location: "Old Town"})
	require.NoError(t, err)

	location := "New Town"
	updated, err := svc.Update(context.Background(), temple.ID, UpdateTempleRequest{Location: &location})
	require.NoError(t, err)

	assert.Equal(t, "Temple A", updated.Name)
	assert.Equal(t, "New Town", updated.Location)
}

func TestDeleteTemple_NotFound(t *testing.T) {
	svc := NewService(newFakeRepository())

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTempleNotFound)
}
