package handlers

import (
    "log"
    "net/http"
    "strconv"

    "github.com/skyallone/project07/models"
)

// Register handles POST /register (form: username, email, password).
func Register(w http.ResponseWriter, r *http.Request) {
    if err := r.ParseForm(); err != nil {
        sendErrorResponse(w, "잘못된 요청입니다.", http.StatusBadRequest)
        return
    }
    username := r.FormValue("username")
    email := r.FormValue("email")
    password := r.FormValue("password")
    if username == "" || email == "" || password == "" {
        sendErrorResponse(w, "필수 입력이 누락되었습니다.", http.StatusBadRequest)
        return
    }

    if existing, err := models.GetUserByUsername(username); err != nil {
        sendErrorResponse(w, "회원가입 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    } else if existing != nil {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "이미 존재하는 사용자명입니다."})
        return
    }
    if existing, err := models.GetUserByEmail(email); err != nil {
        sendErrorResponse(w, "회원가입 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    } else if existing != nil {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "이미 존재하는 이메일입니다."})
        return
    }

    user := models.User{Username: username, Email: email}
    if err := user.SetPassword(password); err != nil {
        sendErrorResponse(w, "회원가입 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    if err := models.CreateUser(&user); err != nil {
        sendErrorResponse(w, "회원가입 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    log.Printf("[auth] Registered user %s", username)
    sendJSONResponse(w, map[string]interface{}{"success": true, "message": "회원가입이 완료되었습니다. 로그인 해주세요."})
}

// Login handles POST /login (form: username, password).
func Login(w http.ResponseWriter, r *http.Request) {
    if err := r.ParseForm(); err != nil {
        sendErrorResponse(w, "잘못된 요청입니다.", http.StatusBadRequest)
        return
    }
    username := r.FormValue("username")
    password := r.FormValue("password")

    user, err := models.GetUserByUsername(username)
    if err != nil {
        sendErrorResponse(w, "로그인 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    if user == nil || !user.CheckPassword(password) {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "아이디 또는 비밀번호가 올바르지 않습니다."})
        return
    }

    if err := setSessionUser(w, r, user.ID); err != nil {
        sendErrorResponse(w, "로그인 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, map[string]interface{}{"success": true, "message": "로그인 성공!", "user": user})
}

// Logout handles POST /logout.
func Logout(w http.ResponseWriter, r *http.Request) {
    clearSession(w, r)
    sendJSONResponse(w, map[string]interface{}{"success": true, "message": "로그아웃되었습니다."})
}

// MyPage handles GET /mypage: the logged-in user's profile, favorites and
// recent chat history.
func MyPage(w http.ResponseWriter, r *http.Request) {
    userID, ok := currentUserID(r)
    if !ok {
        sendErrorResponse(w, "로그인이 필요합니다.", http.StatusUnauthorized)
        return
    }

    user, err := models.GetUserByID(userID)
    if err != nil || user == nil {
        sendErrorResponse(w, "사용자를 찾을 수 없습니다.", http.StatusNotFound)
        return
    }

    favorites, err := models.ListFavorites(userID)
    if err != nil {
        sendErrorResponse(w, "즐겨찾기 조회 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }

    history, err := models.ListChatHistory(r.Context(), strconv.Itoa(userID))
    if err != nil {
        log.Printf("[auth] Failed to load chat history for user %d: %v", userID, err)
        history = []models.ChatHistoryEntry{}
    }

    sendJSONResponse(w, map[string]interface{}{
        "success":      true,
        "user":         user,
        "favorites":    favorites,
        "chat_history": history,
    })
}

// UpdateProfile handles POST /update_profile (form: email, name, phone).
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
    userID, ok := currentUserID(r)
    if !ok {
        sendErrorResponse(w, "로그인이 필요합니다.", http.StatusUnauthorized)
        return
    }
    if err := r.ParseForm(); err != nil {
        sendErrorResponse(w, "잘못된 요청입니다.", http.StatusBadRequest)
        return
    }

    email := r.FormValue("email")
    if email == "" {
        sendErrorResponse(w, "이메일을 입력해주세요.", http.StatusBadRequest)
        return
    }
    if err := models.UpdateUserProfile(userID, email, r.FormValue("name"), r.FormValue("phone")); err != nil {
        sendErrorResponse(w, "프로필 업데이트 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, map[string]interface{}{"success": true, "message": "프로필이 성공적으로 업데이트되었습니다."})
}

// ChangePassword handles POST /change_password (form: current_password,
// new_password, confirm_password).
func ChangePassword(w http.ResponseWriter, r *http.Request) {
    userID, ok := currentUserID(r)
    if !ok {
        sendErrorResponse(w, "로그인이 필요합니다.", http.StatusUnauthorized)
        return
    }
    if err := r.ParseForm(); err != nil {
        sendErrorResponse(w, "잘못된 요청입니다.", http.StatusBadRequest)
        return
    }

    currentPassword := r.FormValue("current_password")
    newPassword := r.FormValue("new_password")
    confirmPassword := r.FormValue("confirm_password")
    if currentPassword == "" || newPassword == "" || confirmPassword == "" {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "모든 필드를 입력해주세요."})
        return
    }
    if newPassword != confirmPassword {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "새 비밀번호가 일치하지 않습니다."})
        return
    }

    user, err := models.GetUserByID(userID)
    if err != nil || user == nil {
        sendErrorResponse(w, "사용자를 찾을 수 없습니다.", http.StatusNotFound)
        return
    }
    if !user.CheckPassword(currentPassword) {
        sendJSONResponse(w, map[string]interface{}{"success": false, "message": "현재 비밀번호가 올바르지 않습니다."})
        return
    }

    if err := user.SetPassword(newPassword); err != nil {
        sendErrorResponse(w, "비밀번호 변경 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    if err := models.UpdateUserPassword(userID, user.PasswordHash); err != nil {
        sendErrorResponse(w, "비밀번호 변경 중 오류가 발생했습니다.", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, map[string]interface{}{"success": true, "message": "비밀번호가 성공적으로 변경되었습니다."})
}
