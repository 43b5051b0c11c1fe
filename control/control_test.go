package control_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketjump/control"
	"github.com/milk9111/rocketjump/control/mocks"
	"go.uber.org/mock/gomock"
)

func expectIdleSource(src *mocks.MockSource) {
	src.EXPECT().ShootPressed().Return(false).AnyTimes()
	src.EXPECT().RecoilPressed().Return(false).AnyTimes()
	src.EXPECT().RecoilReleased().Return(false).AnyTimes()
	src.EXPECT().CancelPressed().Return(false).AnyTimes()
	src.EXPECT().PausePressed().Return(false).AnyTimes()
	src.EXPECT().RestartPressed().Return(false).AnyTimes()
}

func TestPollProjectsCursorOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	proj := mocks.NewMockProjector(ctrl)

	src.EXPECT().CursorPosition().Return(640.0, 360.0).Times(1)
	src.EXPECT().ShootPressed().Return(true)
	src.EXPECT().RecoilPressed().Return(false)
	src.EXPECT().RecoilReleased().Return(true)
	src.EXPECT().CancelPressed().Return(false)
	src.EXPECT().PausePressed().Return(false)
	src.EXPECT().RestartPressed().Return(false)
	proj.EXPECT().ScreenToWorld(640.0, 360.0).Return(cp.Vector{X: 20, Y: 12}).Times(1)

	in := control.NewController(src, proj).Poll()
	if in.Cursor != (cp.Vector{X: 20, Y: 12}) {
		t.Fatalf("cursor = %v", in.Cursor)
	}
	if !in.Shoot || !in.Release || in.StartCharge || in.Cancel {
		t.Fatalf("intent = %+v", in)
	}
	if !in.Gameplay() {
		t.Fatalf("intent with a shot should count as gameplay")
	}
}

func TestPollMenuKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	proj := mocks.NewMockProjector(ctrl)
	src.EXPECT().CursorPosition().Return(0.0, 0.0)
	src.EXPECT().PausePressed().Return(true)
	src.EXPECT().RestartPressed().Return(true)
	expectIdleSource(src)
	proj.EXPECT().ScreenToWorld(gomock.Any(), gomock.Any()).Return(cp.Vector{})

	in := control.NewController(src, proj).Poll()
	if !in.Pause || !in.Restart {
		t.Fatalf("intent = %+v", in)
	}
	if in.Gameplay() {
		t.Fatalf("menu keys should not count as gameplay")
	}
}

func TestDispatch(t *testing.T) {
	target := cp.Vector{X: 3, Y: -4}

	cases := []struct {
		name   string
		in     control.Intent
		expect func(a *mocks.MockActions)
		want   control.Outcome
	}{
		{
			name:   "idle",
			in:     control.Intent{Cursor: target},
			expect: func(a *mocks.MockActions) {},
		},
		{
			name: "shoot",
			in:   control.Intent{Cursor: target, Shoot: true},
			expect: func(a *mocks.MockActions) {
				a.EXPECT().Shoot(target).Return(true)
			},
			want: control.Outcome{Shot: true},
		},
		{
			name: "shoot_empty_magazine",
			in:   control.Intent{Cursor: target, Shoot: true},
			expect: func(a *mocks.MockActions) {
				a.EXPECT().Shoot(target).Return(false)
			},
		},
		{
			name: "start_charge",
			in:   control.Intent{Cursor: target, StartCharge: true},
			expect: func(a *mocks.MockActions) {
				a.EXPECT().StartChargingRecoil().Return(true)
			},
			want: control.Outcome{Charging: true},
		},
		{
			name: "release",
			in:   control.Intent{Cursor: target, Release: true},
			expect: func(a *mocks.MockActions) {
				a.EXPECT().ReleaseRecoil(target).Return(true)
			},
			want: control.Outcome{Recoiled: true},
		},
		{
			name: "tap_charges_then_releases",
			in:   control.Intent{Cursor: target, StartCharge: true, Release: true},
			expect: func(a *mocks.MockActions) {
				gomock.InOrder(
					a.EXPECT().StartChargingRecoil().Return(true),
					a.EXPECT().ReleaseRecoil(target).Return(true),
				)
			},
			want: control.Outcome{Recoiled: true},
		},
		{
			name: "cancel_beats_release",
			in:   control.Intent{Cursor: target, Cancel: true, Release: true},
			expect: func(a *mocks.MockActions) {
				a.EXPECT().CancelRecoil()
			},
		},
		{
			name: "shoot_and_cancel",
			in:   control.Intent{Cursor: target, Shoot: true, Cancel: true},
			expect: func(a *mocks.MockActions) {
				gomock.InOrder(
					a.EXPECT().Shoot(target).Return(true),
					a.EXPECT().CancelRecoil(),
				)
			},
			want: control.Outcome{Shot: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			a := mocks.NewMockActions(ctrl)
			tc.expect(a)
			if got := control.Dispatch(tc.in, a); got != tc.want {
				t.Fatalf("Dispatch = %+v, want %+v", got, tc.want)
			}
		})
	}
}
