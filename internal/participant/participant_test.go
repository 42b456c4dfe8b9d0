package participant

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New("Ada")
	assert.Equal(t, "Ada", p.Name())
	assert.Zero(t, p.TrashCollected())
	assert.Zero(t, p.EcoCredits())
	_, ok := p.Location()
	assert.False(t, ok)
	assert.Empty(t, p.Acquaintances())
	assert.Empty(t, p.Posts())

	other := New("Ada")
	assert.NotEqual(t, p.ID(), other.ID(), "same name must not share identity")
}

func TestCollectTrash(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		wantTrash   float64
		wantCredits float64
		wantText    string
	}{
		{"whole kilograms", 3, 3, 15, "🎉 You collected 3 kg of trash and earned 15 EcoCoins!"},
		{"fractional", 2.5, 2.5, 12.5, "🎉 You collected 2.5 kg of trash and earned 12.5 EcoCoins!"},
		{"zero is applied", 0, 0, 0, "🎉 You collected 0 kg of trash and earned 0 EcoCoins!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("Ada")
			got := p.CollectTrash(tt.amount)
			assert.Equal(t, tt.wantText, got)
			assert.Equal(t, tt.wantTrash, p.TrashCollected())
			assert.Equal(t, tt.wantCredits, p.EcoCredits())
		})
	}
}

func TestCollectTrash_Accumulates(t *testing.T) {
	p := New("Ada")
	for _, a := range []float64{1, 4, 0.5, 10} {
		trashBefore, creditsBefore := p.TrashCollected(), p.EcoCredits()
		p.CollectTrash(a)
		assert.InDelta(t, trashBefore+a, p.TrashCollected(), 1e-9)
		assert.InDelta(t, creditsBefore+5*a, p.EcoCredits(), 1e-9)
	}
}

func TestAddAdditive(t *testing.T) {
	p := New("Ada")
	p.CollectTrash(1)

	got := p.AddAdditive(2)

	assert.Equal(t, "🌊 You added 2 kg of calcium bicarbonate and earned 20 EcoCoins!", got)
	assert.Equal(t, float64(25), p.EcoCredits())
	assert.Equal(t, float64(1), p.TrashCollected(), "additive must not touch trash")
}

func TestSetLocation(t *testing.T) {
	p := New("Ada")
	assert.Equal(t, "📍 Location updated to La Jolla Beach.", p.SetLocation("La Jolla Beach"))
	assert.Equal(t, "📍 Location updated to Pier 39.", p.SetLocation("Pier 39"))

	loc, ok := p.Location()
	require.True(t, ok)
	assert.Equal(t, "Pier 39", loc)
}

func TestAddAcquaintance(t *testing.T) {
	p := New("Ada")
	bob := New("Bob")

	first := p.AddAcquaintance(bob)
	second := p.AddAcquaintance(bob)

	assert.Equal(t, "👋 You are now friends with Bob!", first)
	assert.Equal(t, "🤝 You are already friends with Bob.", second)
	assert.NotEqual(t, first, second)
	require.Len(t, p.Acquaintances(), 1)
	assert.Same(t, bob, p.Acquaintances()[0])
}

func TestAddAcquaintance_OneSided(t *testing.T) {
	p := New("Ada")
	bob := New("Bob")

	p.AddAcquaintance(bob)

	assert.True(t, p.IsAcquainted(bob))
	assert.False(t, bob.IsAcquainted(p))
	assert.Equal(t, NoFriendsMessage, bob.ListAcquaintances())
}

func TestAddAcquaintance_IdentityNotName(t *testing.T) {
	p := New("Ada")
	p.AddAcquaintance(New("Bob"))
	got := p.AddAcquaintance(New("Bob"))

	assert.True(t, strings.HasPrefix(got, "👋"))
	assert.Len(t, p.Acquaintances(), 2)
}

func TestIsAcquainted_Nil(t *testing.T) {
	assert.False(t, New("Ada").IsAcquainted(nil))
}

func TestAddAcquaintance_NilIgnored(t *testing.T) {
	p := New("Ada")
	require.NotPanics(t, func() {
		assert.Empty(t, p.AddAcquaintance(nil))
	})
	assert.Empty(t, p.Acquaintances())
	assert.Equal(t, NoFriendsMessage, p.ListAcquaintances())
}

func TestListAcquaintances(t *testing.T) {
	p := New("Ada")
	assert.Equal(t, NoFriendsMessage, p.ListAcquaintances())

	bob := New("Bob")
	bob.SetLocation("La Jolla Beach")
	charlie := New("Charlie")
	p.AddAcquaintance(bob)
	p.AddAcquaintance(charlie)

	want := "=== Your Friends ===\n" +
		"👤 Bob - Location: La Jolla Beach\n" +
		"👤 Charlie - Location: None"
	if diff := cmp.Diff(want, p.ListAcquaintances()); diff != "" {
		t.Errorf("ListAcquaintances() mismatch (-want +got):\n%s", diff)
	}
}

func TestListAcquaintances_LiveLocation(t *testing.T) {
	p := New("Ada")
	bob := New("Bob")
	bob.SetLocation("La Jolla Beach")
	p.AddAcquaintance(bob)

	bob.SetLocation("Ocean Beach")

	assert.Contains(t, p.ListAcquaintances(), "👤 Bob - Location: Ocean Beach")
	assert.NotContains(t, p.ListAcquaintances(), "La Jolla")
}

func TestListPosts(t *testing.T) {
	p := New("Ada")
	assert.Equal(t, NoPostsMessage, p.ListPosts())

	assert.Equal(t, "📝 Posted: x", p.Post("x"))
	p.Post("y")
	p.Post("x")

	got := p.ListPosts()
	assert.Equal(t, "=== Community Feed ===\n📢 x\n📢 y\n📢 x", got)
	assert.Less(t, strings.Index(got, "📢 x"), strings.Index(got, "📢 y"))
	assert.Equal(t, []string{"x", "y", "x"}, p.Posts())
}

func TestPosts_ReturnsCopy(t *testing.T) {
	p := New("Ada")
	p.Post("hello")

	posts := p.Posts()
	posts[0] = "changed"

	assert.Equal(t, []string{"hello"}, p.Posts())
}

func TestSummarizeImpact_OffsetIsTwiceTrash(t *testing.T) {
	p := New("Ada")
	for _, a := range []float64{0, 1, 2.25, 7} {
		p.CollectTrash(a)
		summary := p.SummarizeImpact()
		assert.Contains(t, summary, "Estimated CO2 Neutralized: "+FormatAmount(2*p.TrashCollected())+" kg")
		assert.Equal(t, 2*p.TrashCollected(), p.Offset())
	}
}

// Collect 3 kg, dose 2 kg of additive, then summarize.
func TestExampleScenario(t *testing.T) {
	p := New("Ada")

	msg := p.CollectTrash(3)
	assert.Contains(t, msg, "3")
	assert.Contains(t, msg, "15")
	assert.Equal(t, float64(3), p.TrashCollected())
	assert.Equal(t, float64(15), p.EcoCredits())

	p.AddAdditive(2)
	assert.Equal(t, float64(35), p.EcoCredits())
	assert.Equal(t, float64(3), p.TrashCollected())

	want := "=== Your Impact ===\n" +
		"🗑️ Trash Collected: 3 kg\n" +
		"💰 EcoCoins Earned: 35\n" +
		"🌍 Estimated CO2 Neutralized: 6 kg"
	assert.Equal(t, want, p.SummarizeImpact())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "3", FormatAmount(3))
	assert.Equal(t, "0.1", FormatAmount(0.1))
	assert.Equal(t, "-2", FormatAmount(-2))
}
