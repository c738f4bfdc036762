package basic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nxdate-generator/datefmt"
)

func useUTC(t *testing.T) {
	t.Helper()

	prev := datefmt.Location
	datefmt.Location = time.UTC

	t.Cleanup(func() { datefmt.Location = prev })
}

func TestDateTest_TextField(t *testing.T) {
	useUTC(t)

	d := DateTest{DateOne: "2024-03-05"}
	assert.Equal(t, "2024 Mar 05", d.nx_String_DateOne())

	parsed := d.nx_Date_DateOne()
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), *parsed)

	bad := DateTest{DateOne: "05/03/2024"}
	assert.Nil(t, bad.nx_Date_DateOne())
	assert.Empty(t, bad.nx_String_DateOne())
}

func TestDateTest_DateField(t *testing.T) {
	useUTC(t)

	d := DateTest{DateTwo: time.Date(2024, time.March, 5, 21, 4, 0, 0, time.UTC)}
	assert.Equal(t, "05 Mar 2024", d.nx_DateTwo())
	assert.Empty(t, DateTest{}.nx_DateTwo())
}

func TestDateTimeTest(t *testing.T) {
	useUTC(t)

	at := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	d := DateTimeTest{DateOne: at.UnixMilli(), DateTwo: at}

	assert.Equal(t, "2024 Mar 05 14:07", d.nx_String_DateOne())

	got := d.nx_Date_DateOne()
	require.NotNil(t, got)
	assert.True(t, at.Equal(*got))

	assert.Nil(t, DateTimeTest{}.nx_Date_DateOne())
	assert.Equal(t, "05/03/2024 02:07", d.nx_DateTwo())
}

func TestUserDTO(t *testing.T) {
	useUTC(t)

	at := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	u := UserDTO{
		Email:     "ada@example.com",
		Birthday:  ISODate("1990-12-10"),
		LastSeen:  Millis(at.UnixMilli()),
		CreatedAt: at,
	}

	birthday := u.ParsedBirthday()
	require.NotNil(t, birthday)
	assert.Equal(t, 1990, birthday.Year())

	assert.Equal(t, "2024-03-05 14:07", u.FormattedLastSeen())
	assert.Equal(t, "05 Mar 2024", u.ShortCreatedAt())
	assert.Equal(t, "Tuesday, 05 March 2024", u.LongCreatedAt())
	assert.Equal(t, "ada@example.com", u.DisplayName())
}
