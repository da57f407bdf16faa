package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionsCoverEveryValue(t *testing.T) {
	for _, c := range Catalogs() {
		require.NotEmpty(t, c.Entries, c.Name)
		seen := make(map[string]bool)
		for _, e := range c.Entries {
			assert.False(t, seen[e.Value], "%s: duplicate value %s", c.Name, e.Value)
			seen[e.Value] = true
			assert.NotEmpty(t, e.Description, "%s: %s", c.Name, e.Value)
			assert.NotContains(t, e.Description, "Unknown", "%s: %s", c.Name, e.Value)
		}
	}
}

func TestUnknownDescriptions(t *testing.T) {
	assert.Equal(t, "Unknown error.", ApiErrorCode("NOPE").Description())
	assert.Equal(t, "Unknown role", Role("root").Description())
	assert.Equal(t, "Unknown permission.", Permission("fly").Description())
	assert.Equal(t, "Unknown Theme", AppTheme("sepia").Description())
	assert.Equal(t, "Unknown authentication type", AuthenticationType("saml").Description())
	assert.Equal(t, "Unknown Classification", BarangayClassification("suburban").Description())
	assert.Equal(t, "Unknown Classification", MunicipalClassification("province").Description())
	assert.Equal(t, "Unknown pagination type.", PaginationType("offset").Description())
	assert.Equal(t, "Unknown", SexualCategory("x").Description())
}

func TestApiErrorCode(t *testing.T) {
	assert.Len(t, ApiErrorCodeValues(), 18)
	assert.Equal(t, "Too many requests. Please try again later.", ApiErrorRateLimit.Description())

	code, err := ParseApiErrorCode("WEBHOOKS_DISABLED")
	require.NoError(t, err)
	assert.Equal(t, ApiErrorWebhooksDisabled, code)

	_, err = ParseApiErrorCode("webhooks_disabled")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestRole(t *testing.T) {
	assert.Equal(t, []string{"standard_user", "admin", "system_support", "super_user"}, RoleStrings())

	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperUser.IsAdmin())
	assert.False(t, RoleStandardUser.IsAdmin())
	assert.False(t, RoleSystemSupport.IsAdmin())

	role, err := ParseRole("system_support")
	require.NoError(t, err)
	assert.Equal(t, RoleSystemSupport, role)
	assert.True(t, role.Valid())
	assert.False(t, Role("guest").Valid())
}

func TestDescriptionMapsAreCopies(t *testing.T) {
	d := PermissionDescriptions()
	d[PermViewUsers] = "changed"
	assert.Equal(t, "Allows viewing a list of all users.", PermViewUsers.Description())
	assert.Len(t, PermissionStrings(), 10)
}

func TestAppEnvironment(t *testing.T) {
	env, ok := CurrentEnvironment(" Production ")
	assert.True(t, ok)
	assert.True(t, env.IsProduction())

	env, ok = CurrentEnvironment("local")
	assert.True(t, ok)
	assert.False(t, env.IsProduction())

	_, ok = CurrentEnvironment("staging")
	assert.False(t, ok)

	_, err := ParseAppEnvironment("uat")
	assert.NoError(t, err)
}

func TestPaginationType(t *testing.T) {
	assert.True(t, PaginationLengthAware.CountsTotal())
	assert.False(t, PaginationCursor.CountsTotal())

	p, err := ParsePaginationType("cursor")
	require.NoError(t, err)
	assert.Equal(t, PaginationCursor, p)
}

func TestFindCatalog(t *testing.T) {
	c, err := FindCatalog("role")
	require.NoError(t, err)
	assert.Equal(t, "admin", c.Entries[1].Value)
	assert.Equal(t, "Administrator with elevated privileges.", c.Entries[1].Description)

	_, err = FindCatalog("colours")
	assert.ErrorIs(t, err, ErrUnknownValue)
}
