package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

func TestQuery_Encode(t *testing.T) {
	var nilInt *int
	var nilType *models.EventType

	tests := []struct {
		name  string
		build func() *Query
		want  string
	}{
		{
			name:  "empty",
			build: NewQuery,
			want:  "",
		},
		{
			name:  "nil values are skipped",
			build: func() *Query { return NewQuery().Add("limit", 10).Add("offset", nil) },
			want:  "?limit=10",
		},
		{
			name:  "nil pointers are skipped",
			build: func() *Query { return NewQuery().Add("offset", nilInt).Add("event_type", nilType) },
			want:  "",
		},
		{
			name: "explicit zero is sent",
			build: func() *Query {
				return NewQuery().Add("limit", Ptr(10)).Add("offset", Ptr(0)).Add("search", Ptr("engineer"))
			},
			want: "?limit=10&offset=0&search=engineer",
		},
		{
			name: "insertion order is kept",
			build: func() *Query {
				return NewQuery().Add("z", "1").Add("a", "2").Add("m", "3")
			},
			want: "?z=1&a=2&m=3",
		},
		{
			name: "scalars are stringified",
			build: func() *Query {
				return NewQuery().
					Add("b", false).
					Add("f", 2.5).
					Add("u", uint8(7)).
					Add("t", models.EventHackathon).
					Add("p", Ptr(models.UserNGO))
			},
			want: "?b=false&f=2.5&u=7&t=hackathon&p=ngo",
		},
		{
			name:  "values are escaped",
			build: func() *Query { return NewQuery().Add("query", "solar & wind/टेक").Add("phone", "+911234567890") },
			want:  "?query=solar+%26+wind%2F%E0%A4%9F%E0%A5%87%E0%A4%95&phone=%2B911234567890",
		},
		{
			name: "non zero only",
			build: func() *Query {
				return NewQuery().Add("query", "x").AddNonZero("limit", 0).AddNonZero("offset", Ptr(0)).AddNonZero("l2", 5).AddNonZero("s", "")
			},
			want: "?query=x&l2=5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.build().Encode())
		})
	}
}

func TestQuery_Len(t *testing.T) {
	var q *Query
	assert.Zero(t, q.Len())
	assert.Equal(t, "", q.Encode())
	assert.Equal(t, 2, NewQuery().Add("a", 1).Add("b", nil).Add("c", "").Len())
}

func TestFilters_Query(t *testing.T) {
	jobs := JobFilter{Limit: Ptr(10), Offset: Ptr(0), Search: Ptr("engineer"), Diverse: Ptr(true)}
	assert.Equal(t, "?limit=10&offset=0&search=engineer&diverse=true", jobs.query().Encode())

	events := EventFilter{EventType: Ptr(models.EventWorkshop), Location: Ptr("Pune")}
	assert.Equal(t, "?event_type=workshop&location=Pune", events.query().Encode())

	assert.Equal(t, "", ProjectFilter{}.query().Encode())
	assert.Equal(t, "?is_active=false", UserFilter{IsActive: Ptr(false)}.query().Encode())
	assert.Equal(t, "?status=active", CSRCourseFilter{Status: Ptr(models.CourseActive)}.query().Encode())

	n := NotificationQuery{UserID: 3, Type: "team_invite"}
	assert.Equal(t, "?user_id=3&unread_only=false&limit=50&offset=0&notification_type=team_invite", n.query().Encode())
}
