package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"fingersnake/internal/score"
	"fingersnake/internal/track"
)

// Run opens the window, camera and hand detector and drives the game loop
// until the player quits.
func Run(cfg Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Windowed)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Audio is best-effort; the game is playable silent.
	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}
	SetMuted(cfg.Mute)

	// Camera and hand tracking are hard requirements.
	capture, err := track.OpenCapture(cfg.CameraDevice)
	if err != nil {
		return err
	}
	defer capture.Close()

	detector, err := track.NewLandmarkNet(cfg.ModelPath, track.DefaultConfig())
	if err != nil {
		return err
	}
	defer detector.Close()

	assets := OpenAssets(cfg.AssetsDir)
	defer assets.Close()
	if err := assets.Watch(); err != nil {
		fmt.Fprintf(os.Stderr, "asset watch disabled: %v\n", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	fbW, fbH := window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return fmt.Errorf("zero-size framebuffer")
	}

	// Camera preview geometry (top-right corner).
	frameW, frameH := capture.Size()
	camPrevH := CamPreviewW * frameH / frameW
	camX := fbW - CamPreviewW - CamMarginRight
	camY := CamMarginTop
	camBottom := camY + camPrevH

	session := NewSession(seed, fbW, fbH, float64(cfg.TimeLimit))
	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)
	cam := NewCamera(fbW, fbH)
	input := NewInput()
	pointer := NewPointer(fbW, fbH)
	bus := NewEventBus()

	var store *score.Store
	if st, err := score.Open(cfg.ScoresPath); err != nil {
		fmt.Fprintf(os.Stderr, "score store disabled: %v\n", err)
	} else {
		store = st
		defer store.Close()
		if best, err := store.Best(); err == nil {
			session.BestScore = best
		}
	}

	bus.Subscribe(EventGameStarted, func(Event) {
		PlaySound(SoundMenuSelect)
	})
	bus.Subscribe(EventFoodEaten, func(e Event) {
		PlaySound(SoundEat)
		PlaySound(SoundExplosion)
		particles.SpawnExplosion(e.X, e.Y)
		cam.AddShake(5, 0.2)
	})
	bus.Subscribe(EventGameOver, func(e Event) {
		PlaySound(SoundGameOver)
		if store == nil {
			if e.Data > session.BestScore {
				session.BestScore = e.Data
			}
			return
		}
		if err := store.Add(e.Data); err != nil {
			fmt.Fprintf(os.Stderr, "record score: %v\n", err)
		} else if best, err := store.Best(); err == nil {
			session.BestScore = best
		}
	})

	// Background/button textures, re-uploaded when the asset watcher bumps
	// the version.
	type texSlot struct {
		id      uint32
		version uint64
	}
	slots := make(map[string]*texSlot)
	texFor := func(name string) (uint32, bool) {
		img, ver, ok := assets.Image(name)
		if !ok {
			return 0, false
		}
		sl := slots[name]
		if sl == nil {
			sl = &texSlot{}
			slots[name] = sl
		}
		if sl.id == 0 || sl.version != ver {
			sl.id = UpdateTexture(sl.id, img)
			sl.version = ver
		}
		return sl.id, true
	}
	defer func() {
		for _, sl := range slots {
			DeleteTexture(sl.id)
		}
	}()

	btn := StartButtonRect(fbW, fbH)
	var fallbackBtnTex uint32
	startBtnTex := func() uint32 {
		if id, ok := texFor("start_btn.png"); ok {
			return id
		}
		if fallbackBtnTex == 0 {
			fallbackBtnTex = NewTexture(FallbackStartButton(int(btn.W), int(btn.H)))
		}
		return fallbackBtnTex
	}
	var previewTex uint32
	defer func() {
		DeleteTexture(fallbackBtnTex)
		DeleteTexture(previewTex)
	}()

	startRound := func() {
		pointer.Reset()
		session.Start(camBottom, particles, bus)
	}

	var spriteBuf, glowBuf, markerBuf []float32

	frameDur := time.Second / TargetFPS
	last := glfw.GetTime()
	for !window.ShouldClose() {
		frameStart := time.Now()
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		// R restarts both in-game and on the end screen.
		if input.JustPressed(window, glfw.KeyR) && session.Page != PageMenu {
			startRound()
		}
		if session.Page == PageMenu {
			if input.JustPressed(window, glfw.KeyS) {
				startRound()
			}
			if input.JustClicked(window, glfw.MouseButtonLeft) {
				mx, my := CursorPos(window, fbW, fbH)
				if btn.Contains(mx, my) {
					startRound()
				}
			}
		}

		if session.Page == PageGame {
			frame, err := capture.Read()
			if err != nil {
				return fmt.Errorf("camera: %w", err)
			}

			hands, derr := detector.Detect(frame)
			if derr != nil {
				fmt.Fprintf(os.Stderr, "hand detect: %v\n", derr)
			}
			if len(hands) > 0 {
				tip := hands[0].Points[track.IndexFingertip]
				pointer.Observe(tip.X, tip.Y)
			} else {
				pointer.Miss()
			}
			session.TargetX, session.TargetY = pointer.X, pointer.Y

			session.Update(dt, camBottom, bus)
			particles.Update(dt)
			cam.UpdateShake(dt, seed^uint64(now*1000))

			if img, perr := track.Preview(frame, CamPreviewW); perr == nil {
				previewTex = UpdateTexture(previewTex, img)
			}
		}

		// Render. Gameplay sprites use the shaken camera, UI the stable one.
		stableCam := Camera{X: cam.X, Y: cam.Y, Zoom: cam.Zoom}
		renderCam := stableCam
		renderCam.X, renderCam.Y = cam.EffectivePos()

		switch session.Page {
		case PageMenu:
			rend.BeginFrame(Palette.MenuBg, fbW, fbH)
			if tex, ok := texFor("main_bg.png"); ok {
				rend.DrawTexture(tex, 0, 0, float64(fbW), float64(fbH), fbW, fbH)
			}
			rend.DrawTexture(startBtnTex(), btn.X, btn.Y, btn.W, btn.H, fbW, fbH)

		case PageGame:
			rend.BeginFrame(Palette.Background, fbW, fbH)
			if tex, ok := texFor("game_bg.png"); ok {
				rend.DrawTexture(tex, 0, 0, float64(fbW), float64(fbH), fbW, fbH)
			}

			// Obstacles: soft halo, fill, edge.
			for _, o := range session.Obstacles {
				halo := o.Inflate(6)
				rend.DrawRect(halo.X, halo.Y, halo.W, halo.H, Palette.ObstacleHalo, 36.0/255.0, fbW, fbH)
			}
			for _, o := range session.Obstacles {
				rend.DrawRect(o.X, o.Y, o.W, o.H, Palette.ObstacleFill, 1, fbW, fbH)
				rend.DrawRectOutline(o.X, o.Y, o.W, o.H, 2, Palette.ObstacleEdge, 1, fbW, fbH)
			}

			// Neon glow pass, then solid discs on top.
			glowBuf = glowBuf[:0]
			glowBuf = session.Food.GlowData(glowBuf)
			glowBuf = session.Snake.GlowData(glowBuf)
			rend.DrawGlowSprites(glowBuf, renderCam, fbW, fbH)

			spriteBuf = spriteBuf[:0]
			spriteBuf = session.Food.RenderData(spriteBuf)
			spriteBuf = session.Snake.RenderData(spriteBuf)
			spriteBuf = particles.RenderData(spriteBuf)
			rend.DrawSprites(spriteBuf, renderCam, fbW, fbH)

			// Camera preview with border and fingertip marker.
			rend.DrawRect(float64(camX-4), float64(camY-4),
				CamPreviewW+8, float64(camPrevH+8), Palette.Border, 200.0/255.0, fbW, fbH)
			if previewTex != 0 {
				rend.DrawTexture(previewTex, float64(camX), float64(camY),
					CamPreviewW, float64(camPrevH), fbW, fbH)
			}
			mx := float64(camX) + clampF(pointer.FrameX, 0, 1)*CamPreviewW
			my := float64(camY) + clampF(pointer.FrameY, 0, 1)*float64(camPrevH)
			ring := Palette.MarkerRing
			dot := Palette.Marker
			markerBuf = markerBuf[:0]
			markerBuf = append(markerBuf,
				float32(mx), float32(my), 20,
				float32(ring.R)/255, float32(ring.G)/255, float32(ring.B)/255, 0.35, 0,
				float32(mx), float32(my), 12,
				float32(dot.R)/255, float32(dot.G)/255, float32(dot.B)/255, 1, 0,
			)
			rend.DrawSprites(markerBuf, stableCam, fbW, fbH)

		case PageEnd:
			rend.BeginFrame(Palette.EndBg, fbW, fbH)
			if tex, ok := texFor("end_bg.png"); ok {
				rend.DrawTexture(tex, 0, 0, float64(fbW), float64(fbH), fbW, fbH)
			}
		}

		_, _, hasMenuBg := assets.Image("main_bg.png")
		_, _, hasEndBg := assets.Image("end_bg.png")
		RenderHUD(rend, session, fbW, fbH, hasMenuBg, hasEndBg)

		window.SwapBuffers()

		// Hold the frame rate; vsync alone can run faster than TargetFPS.
		if rem := frameDur - time.Since(frameStart); rem > 0 {
			time.Sleep(rem)
		}
	}
	return nil
}
