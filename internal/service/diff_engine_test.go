package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stripe-account-reconciler/internal/attrtree"
)

func TestAccountDiff_NoChanges(t *testing.T) {
	current := attrtree.New()
	current.Set("Ada", "individual", "first_name")
	previous := current.Clone()

	assert.True(t, AccountDiff(current, previous).IsEmpty())
}

func TestAccountDiff_FullDOBResubmit(t *testing.T) {
	previous := attrtree.New()
	previous.Set(10, "individual", "dob", "day")
	previous.Set(12, "individual", "dob", "month")
	previous.Set(1985, "individual", "dob", "year")

	current := previous.Clone()
	current.Set(11, "individual", "dob", "day")

	d := AccountDiff(current, previous)

	// One changed part forces the whole block back out.
	day, _ := d.Get("individual", "dob", "day")
	assert.Equal(t, 11, day)
	month, ok := d.Get("individual", "dob", "month")
	require.True(t, ok)
	assert.Equal(t, 12, month)
	year, ok := d.Get("individual", "dob", "year")
	require.True(t, ok)
	assert.Equal(t, 1985, year)
}

func TestAccountDiff_IDNumberSupersedesLastFour(t *testing.T) {
	previous := attrtree.New()
	previous.Set("6789", "individual", "ssn_last_4")

	current := attrtree.New()
	current.Set("123456789", "individual", "id_number")
	current.Set("6789", "individual", "ssn_last_4")

	d := AccountDiff(current, previous)

	id, ok := d.Get("individual", "id_number")
	require.True(t, ok)
	assert.Equal(t, "123456789", id)
	_, ok = d.Get("individual", "ssn_last_4")
	assert.False(t, ok)
}

func TestAccountDiff_BusinessToIndividualRenamesCompany(t *testing.T) {
	previous := attrtree.New()
	previous.Set("company", "business_type")
	previous.Set("Widgets LLC", "business_profile", "name")

	current := attrtree.New()
	current.Set("individual", "business_type")
	current.Set("Ada Lovelace", "business_profile", "name")

	d := AccountDiff(current, previous)

	name, ok := d.Get("company", "name")
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", name)
}

func TestAccountDiff_IndividualUnchangedTypeNoCompanyRename(t *testing.T) {
	previous := attrtree.New()
	previous.Set("individual", "business_type")
	previous.Set("Ada", "individual", "first_name")

	current := previous.Clone()
	current.Set("Grace", "individual", "first_name")

	d := AccountDiff(current, previous)

	_, ok := d.Get("company", "name")
	assert.False(t, ok)
	first, _ := d.Get("individual", "first_name")
	assert.Equal(t, "Grace", first)
}

func TestPersonDiff_FullDOBResubmitAtRoot(t *testing.T) {
	previous := attrtree.New()
	previous.Set(10, "dob", "day")
	previous.Set(12, "dob", "month")
	previous.Set(1985, "dob", "year")
	previous.Set("Ada", "first_name")

	current := previous.Clone()
	current.Set(1986, "dob", "year")

	d := PersonDiff(current, previous)

	day, ok := d.Get("dob", "day")
	require.True(t, ok)
	assert.Equal(t, 10, day)
	year, _ := d.Get("dob", "year")
	assert.Equal(t, 1986, year)
	_, ok = d.Get("first_name")
	assert.False(t, ok)
}
